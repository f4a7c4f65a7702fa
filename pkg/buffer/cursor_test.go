package buffer

import "testing"

func TestCursorMovement(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("ab\n\ncdef"))
	c := NewCursor(&buf)

	c = c.Right().Right().Right() // Wraps onto the empty line
	if line, col := c.GetLineCol(); line != 1 || col != 0 {
		t.Errorf("Expected 1,0 got %v,%v", line, col)
	}

	c = c.Down().Right().Right()
	if line, col := c.GetLineCol(); line != 2 || col != 2 {
		t.Errorf("Expected 2,2 got %v,%v", line, col)
	}

	c = c.Up() // Clamped to the empty line
	if line, col := c.GetLineCol(); line != 1 || col != 0 {
		t.Errorf("Expected 1,0 got %v,%v", line, col)
	}

	c = c.Left() // Wraps to the end of the line above
	if line, col := c.GetLineCol(); line != 0 || col != 2 {
		t.Errorf("Expected 0,2 got %v,%v", line, col)
	}

	c = c.Up()
	if line, col := c.GetLineCol(); line != 0 || col != 0 {
		t.Errorf("Expected 0,0 got %v,%v", line, col)
	}

	c = c.SetLineCol(2, 0).Down() // The last line goes to its end
	if line, col := c.GetLineCol(); line != 2 || col != 4 {
		t.Errorf("Expected 2,4 got %v,%v", line, col)
	}

	if !c.Eq(NewCursor(&buf).SetLineCol(9, 9)) {
		t.Errorf("Expected clamped cursor to equal %v,%v", c.line, c.col)
	}
}

func TestCursorWordBoundaries(t *testing.T) {
	var buf Buffer = NewRopeBuffer([]byte("if  x>=10:\nnext"))
	c := NewCursor(&buf)

	stops := []int{2, 5, 7, 9, 10}
	for _, stop := range stops {
		c = c.NextWordBoundaryEnd()
		if _, col := c.GetLineCol(); col != stop {
			t.Errorf("Expected to stop at column %v, got %v", stop, col)
		}
	}

	c = c.NextWordBoundaryEnd() // At the end of the line, move to the next
	if line, col := c.GetLineCol(); line != 1 || col != 0 {
		t.Errorf("Expected 1,0 got %v,%v", line, col)
	}

	c = c.PrevWordBoundaryStart()
	if line, col := c.GetLineCol(); line != 0 || col != 10 {
		t.Errorf("Expected 0,10 got %v,%v", line, col)
	}

	backStops := []int{9, 7, 5, 4, 0}
	for _, stop := range backStops {
		c = c.PrevWordBoundaryStart()
		if _, col := c.GetLineCol(); col != stop {
			t.Errorf("Expected to stop at column %v, got %v", stop, col)
		}
	}
}
