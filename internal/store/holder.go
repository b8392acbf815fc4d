package store

import "sync"

// Holder хранит текущий срез состояния. HTTP-обработчики выполняются
// конкурентно, поэтому доступ под RWMutex; гранулярность мутации — одно
// действие пользователя, частичных применений нет.
type Holder struct {
	mu   sync.RWMutex
	snap Snapshot
}

func NewHolder(snap Snapshot) *Holder {
	return &Holder{snap: snap}
}

// Current возвращает текущий срез только на чтение
func (h *Holder) Current() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snap
}

// Apply атомарно заменяет срез результатом операции и возвращает новый срез
func (h *Holder) Apply(op func(Snapshot) Snapshot) Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.snap = op(h.snap)
	return h.snap
}
