package render

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/trainops/batch_planner/internal/calendar"
	"github.com/trainops/batch_planner/internal/model"
)

// Константы размеров и отступов
const (
	imageWidth    = 1400
	imageHeight   = 980
	headerHeight  = 80
	weekdayRow    = 30
	cellPadding   = 4.0
	badgeHeight   = 22.0
	badgeGap      = 3.0
	badgeRadius   = 4.0
	dayNumberPad  = 18.0
	columnsInGrid = 7
)

// Цветовая схема
var (
	bgColor          = color.RGBA{245, 246, 248, 255}
	gridLineColor    = color.NRGBA{200, 200, 200, 255}
	textColor        = color.RGBA{80, 85, 90, 220}
	mutedTextColor   = color.RGBA{150, 155, 160, 200}
	holidayTextColor = color.RGBA{220, 80, 80, 255}
	badgeTextColor   = color.RGBA{255, 255, 255, 255}

	eventColors = map[model.EventColor]color.NRGBA{
		model.ColorBlue:   {66, 133, 244, 255},
		model.ColorGreen:  {52, 168, 83, 255},
		model.ColorRed:    {234, 67, 53, 255},
		model.ColorYellow: {251, 188, 5, 255},
		model.ColorPurple: {155, 81, 224, 255},
		model.ColorOrange: {255, 138, 52, 255},
		model.ColorGray:   {120, 124, 130, 255},
	}
	defaultBadgeColor = color.NRGBA{120, 124, 130, 255}
)

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// MonthImage рисует сетку месяца с полосами многодневных событий,
// бейджами и индикатором "+N more" — те же правила видимости, что и в
// месячном представлении
func MonthImage(ref time.Time, singleDay, multiDay []model.CalendarEvent) ([]byte, error) {
	cells := calendar.MonthCells(ref)
	if len(cells) == 0 {
		return nil, fmt.Errorf("empty month grid for %s", ref.Format("2006-01"))
	}
	layout := calendar.BuildMonthLayout(multiDay, singleDay, ref)

	rows := len(cells) / columnsInGrid
	cellWidth := float64(imageWidth) / columnsInGrid
	cellHeight := float64(imageHeight-headerHeight-weekdayRow) / float64(rows)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)

	dc.SetColor(bgColor)
	dc.Clear()

	// Заголовок месяца
	dc.SetColor(textColor)
	dc.DrawStringAnchored(ref.Format("January 2006"), imageWidth/2, headerHeight/2, 0.5, 0.5)

	// Строка дней недели
	for i, name := range weekdayNames {
		x := float64(i)*cellWidth + cellWidth/2
		dc.DrawStringAnchored(name, x, headerHeight+weekdayRow/2, 0.5, 0.5)
	}

	for i, cell := range cells {
		col := i % columnsInGrid
		row := i / columnsInGrid

		x := float64(col) * cellWidth
		y := float64(headerHeight+weekdayRow) + float64(row)*cellHeight

		dc.SetColor(gridLineColor)
		dc.SetLineWidth(1)
		dc.DrawRectangle(x, y, cellWidth, cellHeight)
		dc.Stroke()

		if cell.CurrentMonth {
			dc.SetColor(textColor)
		} else {
			dc.SetColor(mutedTextColor)
		}
		dc.DrawString(fmt.Sprintf("%d", cell.Day), x+cellPadding, y+dayNumberPad)

		drawCell(dc, layout.CellView(cell), x, y+dayNumberPad+badgeGap, cellWidth)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode month image: %w", err)
	}
	return buf.Bytes(), nil
}

func drawCell(dc *gg.Context, view calendar.CellView, x, top, width float64) {
	if view.Holiday != nil {
		dc.SetColor(holidayTextColor)
		dc.DrawString(truncateTitle(view.Holiday.Title, width), x+cellPadding, top+badgeHeight/2)
		return
	}

	y := top
	for _, ev := range view.Events {
		badge, ok := eventColors[ev.Color]
		if !ok {
			badge = defaultBadgeColor
		}
		dc.SetColor(badge)
		dc.DrawRoundedRectangle(x+cellPadding, y, width-2*cellPadding, badgeHeight, badgeRadius)
		dc.Fill()

		dc.SetColor(badgeTextColor)
		dc.DrawString(truncateTitle(ev.Title, width), x+2*cellPadding, y+badgeHeight-7)

		y += badgeHeight + badgeGap
	}

	if view.Overflow > 0 {
		dc.SetColor(mutedTextColor)
		dc.DrawString(fmt.Sprintf("+%d more...", view.Overflow), x+cellPadding, y+badgeHeight/2)
	}
}

// truncateTitle обрезает заголовок под ширину ячейки для моноширинного шрифта
func truncateTitle(title string, width float64) string {
	maxChars := int((width - 4*cellPadding) / 7)
	if maxChars < 4 {
		maxChars = 4
	}
	runes := []rune(title)
	if len(runes) <= maxChars {
		return title
	}
	return string(runes[:maxChars-1]) + "…"
}
