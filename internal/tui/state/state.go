package state

// ClampOffset keeps a scroll offset inside the body so that the last screen
// is always full.
func ClampOffset(offset, totalLines, height int) int {
	if height <= 0 || totalLines <= height {
		return 0
	}
	maxOffset := totalLines - height
	if offset > maxOffset {
		return maxOffset
	}
	if offset < 0 {
		return 0
	}
	return offset
}

// BodyHeight is the number of body lines left once the header, prompt and
// status rows are drawn.
func BodyHeight(height int, hasStatus bool) int {
	if height <= 0 {
		return 0
	}
	chrome := 6
	if hasStatus {
		chrome += 2
	}
	body := height - chrome
	if body < 3 {
		body = 3
	}
	return body
}

func PageStep(height int, hasStatus bool) int {
	if height <= 0 {
		return 10
	}
	return BodyHeight(height, hasStatus)
}

// Window returns the half-open range of body lines visible at offset.
func Window(totalLines, offset, height int) (int, int) {
	if totalLines <= 0 {
		return 0, 0
	}
	if height <= 0 || totalLines <= height {
		return 0, totalLines
	}
	start := ClampOffset(offset, totalLines, height)
	return start, start + height
}

// PageBounds returns the absolute index range of a zero-based page, clamped
// to total.
func PageBounds(total, page, pageSize int) (int, int) {
	if total <= 0 || page < 0 || pageSize <= 0 {
		return 0, 0
	}
	start := page * pageSize
	if start >= total {
		return total, total
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return start, end
}
