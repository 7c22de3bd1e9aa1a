package views

import g "maragu.dev/gomponents"

func icon(class, path string, width string) g.Node {
	return g.Rawf(`<svg class="%s" fill="none" viewBox="0 0 24 24" stroke="currentColor" aria-hidden="true"><path stroke-linecap="round" stroke-linejoin="round" stroke-width="%s" d="%s"/></svg>`, class, width, path)
}

func iconClose(class string) g.Node   { return icon(class, "M6 18L18 6M6 6l12 12", "2") }
func iconMenu(class string) g.Node    { return icon(class, "M4 6h16M4 12h16M4 18h16", "2") }
func iconPrev(class string) g.Node    { return icon(class, "M15 19l-7-7 7-7", "2") }
func iconNext(class string) g.Node    { return icon(class, "M9 5l7 7-7 7", "2") }
func iconChevron(class string) g.Node { return icon(class, "M19 9l-7 7-7-7", "2") }
func iconUp(class string) g.Node      { return icon(class, "M5 10l7-7m0 0l7 7m-7-7v18", "2") }
func iconArrow(class string) g.Node   { return icon(class, "m9 18 6-6-6-6", "2.5") }
func iconDoc(class string) g.Node {
	return icon(class, "M9 12h6m-6 4h6m2 5H7a2 2 0 01-2-2V5a2 2 0 012-2h5.586a1 1 0 01.707.293l5.414 5.414a1 1 0 01.293.707V19a2 2 0 01-2 2z", "1.5")
}
func iconImage(class string) g.Node {
	return icon(class, "M4 16l4.586-4.586a2 2 0 012.828 0L16 16m-2-2l1.586-1.586a2 2 0 012.828 0L20 14m-6-6h.01M6 20h12a2 2 0 002-2V6a2 2 0 00-2-2H6a2 2 0 00-2 2v12a2 2 0 002 2z", "1.5")
}
func iconWarning(class string) g.Node {
	return icon(class, "M12 9v2m0 4h.01m-6.938 4h13.856c1.54 0 2.502-1.667 1.732-3L13.732 4c-.77-1.333-2.694-1.333-3.464 0L3.34 16c-.77 1.333.192 3 1.732 3z", "2")
}
func iconCode(class string) g.Node { return icon(class, "M10 20l4-16m4 4l4 4-4 4M6 16l-4-4 4-4", "2") }
func iconStep(class string) g.Node { return icon(class, "M13 7l5 5m0 0l-5 5m5-5H6", "2") }
