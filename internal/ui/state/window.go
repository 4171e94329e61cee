package state

func (l *List) showLeadingPage() {
	l.FirstVisible = 0
	l.LastVisible = min(len(l.Items), l.PageSize)
}

func (l *List) showTrailingPage() {
	l.FirstVisible = max(0, len(l.Items)-l.PageSize)
	l.LastVisible = len(l.Items)
}

// slideWindow shifts the window by delta rows, keeping its size.
func (l *List) slideWindow(delta int) {
	l.FirstVisible += delta
	l.LastVisible += delta
}

// ensureVisible moves the window the minimum distance needed to show the
// selection, keeping it within the list.
func (l *List) ensureVisible() {
	n := len(l.Items)
	if n == 0 {
		l.Selected = 0
		l.FirstVisible = 0
		l.LastVisible = 0
		return
	}
	size := min(n, l.PageSize)
	if l.Selected < 0 {
		l.Selected = 0
	}
	if l.Selected >= n {
		l.Selected = n - 1
	}
	first := l.FirstVisible
	if first < 0 {
		first = 0
	}
	if first > n-size {
		first = n - size
	}
	if l.Selected < first {
		first = l.Selected
	}
	if l.Selected >= first+size {
		first = l.Selected - size + 1
	}
	l.FirstVisible = first
	l.LastVisible = first + size
}
