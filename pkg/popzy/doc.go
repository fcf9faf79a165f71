// Package popzy provides stacked modal dialogs for Bubble Tea programs.
//
// Dialogs are built from templates held in a Registry and are owned by a
// Manager. The Manager keeps the stack of open dialogs, routes escape, close
// key, footer shortcuts and mouse clicks to the topmost one, holds a scroll
// lock on the page while any dialog is open, and composites the dialogs over
// the page view.
//
//	reg := popzy.NewRegistry(popzy.Template{ID: "hello", Body: "Hello!"})
//	mgr := popzy.NewManager(reg, popzy.WithScrollTarget(page))
//	dlg := mgr.New("hello", popzy.WithFooter(true))
//	dlg.AddFooterButton("OK", "", func() tea.Cmd { return dlg.Close() })
//	_, cmd := dlg.Open()
//
// In the host model's Update, give the Manager the first look at each message:
//
//	if handled, cmd := m.dialogs.Update(msg); handled {
//		return m, cmd
//	}
//
// and wrap the page in View:
//
//	return m.dialogs.View(m.page.View())
package popzy
