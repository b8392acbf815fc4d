package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/trainops/batch_planner/internal/model"
	"github.com/trainops/batch_planner/internal/repository"
)

// UnknownUserName подставляется вместо имени, если сотрудник не найден
const UnknownUserName = "Unknown"

// Directory справочник сотрудников, загружаемый в память при старте.
// Поиск несуществующего id не ошибка: возвращается заглушка.
type Directory struct {
	repo *repository.EmployeeRepository

	mu    sync.RWMutex
	byID  map[string]model.Employee
	order []model.Employee
}

func NewDirectory(repo *repository.EmployeeRepository) *Directory {
	return &Directory{
		repo: repo,
		byID: make(map[string]model.Employee),
	}
}

// Load перечитывает справочник из базы
func (d *Directory) Load(ctx context.Context) error {
	employees, err := d.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load employees: %w", err)
	}

	byID := make(map[string]model.Employee, len(employees))
	for _, e := range employees {
		byID[e.UserID] = e
	}

	d.mu.Lock()
	d.byID = byID
	d.order = employees
	d.mu.Unlock()
	return nil
}

// ResolveUser реализует calendar.UserDirectory
func (d *Directory) ResolveUser(id string) model.EventUser {
	d.mu.RLock()
	e, ok := d.byID[id]
	d.mu.RUnlock()

	if !ok {
		return model.EventUser{ID: id, Name: UnknownUserName}
	}
	return model.EventUser{
		ID:          e.UserID,
		Name:        e.DisplayName(),
		PicturePath: e.PicturePath,
	}
}

// Employees возвращает весь справочник
func (d *Directory) Employees() []model.Employee {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]model.Employee(nil), d.order...)
}
