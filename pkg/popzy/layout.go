package popzy

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DefaultWidth is the container width used when the style sheet sets none.
const DefaultWidth = 60

// screenMargin keeps a default-width container off the screen edges.
const screenMargin = 4

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return r.w > 0 && r.h > 0 && x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

func (r rect) offset(dx, dy int) rect {
	return rect{x: r.x + dx, y: r.y + dy, w: r.w, h: r.h}
}

type buttonHit struct {
	rect  rect
	index int
}

// dialogLayout is a rendered dialog and its hit regions in screen cells.
type dialogLayout struct {
	view      string
	container rect
	close     rect
	buttons   []buttonHit
}

// layout renders d centered on a screenW x screenH screen, shifted by its
// transition progress.
func (d *Modal) layout(screenW, screenH int) dialogLayout {
	sheet := d.mgr.styles
	container := d.root.FindKind(KindContainer)

	style := sheet.Style(container.classes...)
	if style.GetWidth() == 0 {
		style = style.Width(max(1, min(screenW-screenMargin, DefaultWidth)))
	}
	innerW := max(1, style.GetWidth()-style.GetHorizontalPadding())

	var (
		rows     []string
		y        int
		closeHit rect
		buttons  []buttonHit
	)

	titleNode := container.FindKind(KindTitle)
	closeNode := container.FindKind(KindCloseButton)
	if titleNode != nil || closeNode != nil {
		var title, glyph string
		if closeNode != nil {
			glyph = sheet.Style(closeNode.classes...).Render(closeNode.Text)
		}
		gw := lipgloss.Width(glyph)
		if titleNode != nil {
			title = sheet.Style(titleNode.classes...).Render(titleNode.Text)
			title = ansi.Truncate(title, max(0, innerW-gw-1), "…")
		}
		gap := max(0, innerW-lipgloss.Width(title)-gw)
		rows = append(rows, title+strings.Repeat(" ", gap)+glyph)
		if closeNode != nil {
			closeHit = rect{x: lipgloss.Width(title) + gap, y: y, w: gw, h: 1}
		}
		y++
	}

	if content := container.FindKind(KindContent); content != nil {
		cs := sheet.Style(content.classes...)
		block := cs.Render(d.renderContent(content, max(1, innerW-cs.GetHorizontalFrameSize())))
		rows = append(rows, block)
		y += lipgloss.Height(block)
	}

	if d.footer != nil {
		fs := sheet.Style(d.footer.classes...)
		fw := max(1, innerW-fs.GetHorizontalFrameSize())

		var (
			frows  []string
			btns   []string
			textH  int
			x      int
			relBtn []buttonHit
		)
		for _, n := range d.footer.children {
			switch n.Kind {
			case KindFooterText:
				t := d.renderText(n.Text, FormatText, fw)
				frows = append(frows, t)
				textH += lipgloss.Height(t)
			case KindButton:
				if len(btns) > 0 {
					btns = append(btns, " ")
					x++
				}
				b := sheet.Style(n.classes...).Render(n.Text)
				bw := lipgloss.Width(b)
				relBtn = append(relBtn, buttonHit{rect: rect{x: x, w: bw, h: lipgloss.Height(b)}, index: n.button})
				btns = append(btns, b)
				x += bw
			}
		}
		if len(btns) > 0 {
			frows = append(frows, lipgloss.JoinHorizontal(lipgloss.Top, btns...))
		}

		block := fs.Render(lipgloss.JoinVertical(lipgloss.Left, frows...))
		dx := fs.GetMarginLeft() + fs.GetBorderLeftSize() + fs.GetPaddingLeft()
		dy := y + fs.GetMarginTop() + fs.GetBorderTopSize() + fs.GetPaddingTop() + textH
		for _, b := range relBtn {
			b.rect = b.rect.offset(dx, dy)
			buttons = append(buttons, b)
		}
		rows = append(rows, block)
		y += lipgloss.Height(block)
	}

	inner := lipgloss.PlaceHorizontal(innerW, lipgloss.Left, lipgloss.JoinVertical(lipgloss.Left, rows...))
	view := style.Render(inner)

	cw, ch := lipgloss.Width(view), lipgloss.Height(view)
	progress := d.trans.progress(d.mgr.clock(), d.mgr.trans)
	x0 := max(0, (screenW-cw)/2)
	y0 := max(0, (screenH-ch)/2) + slideOffset(progress)

	ox := x0 + style.GetMarginLeft() + style.GetBorderLeftSize() + style.GetPaddingLeft()
	oy := y0 + style.GetMarginTop() + style.GetBorderTopSize() + style.GetPaddingTop()

	l := dialogLayout{view: view, container: rect{x: x0, y: y0, w: cw, h: ch}}
	if closeHit.w > 0 {
		l.close = closeHit.offset(ox, oy)
	}
	for _, b := range buttons {
		b.rect = b.rect.offset(ox, oy)
		l.buttons = append(l.buttons, b)
	}
	return l
}

func (d *Modal) renderContent(content *Node, width int) string {
	parts := make([]string, 0, len(content.children))
	for _, n := range content.children {
		switch n.Kind {
		case KindSlot:
			if n.model != nil {
				parts = append(parts, n.model.View())
			}
		case KindText:
			parts = append(parts, d.renderText(n.Text, n.Format, width))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (d *Modal) renderText(text string, format Format, width int) string {
	if format == FormatMarkdown {
		out, err := d.mgr.markdown.Render(text, width)
		if err == nil {
			return out
		}
		d.logger.Warn().Err(err).Msg("markdown render failed, showing source")
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}
