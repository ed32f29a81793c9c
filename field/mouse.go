package field

import "time"

type clickKind uint8

const (
	singleClick clickKind = iota + 1
	doubleClick
	tripleClick
)

// multiClickTimeout is the maximum gap between clicks counted as one
// multi-click sequence.
const multiClickTimeout = 500 * time.Millisecond

// clickDetector counts consecutive clicks at the same cell within the
// timeout. The count cycles 1 -> 2 -> 3 -> 1.
type clickDetector struct {
	lastTime time.Time
	lastX    int
	lastY    int
	count    int
	now      func() time.Time
}

func (c *clickDetector) detect(x, y int) clickKind {
	nowFn := c.now
	if nowFn == nil {
		nowFn = time.Now
	}
	now := nowFn()

	if x == c.lastX && y == c.lastY && now.Sub(c.lastTime) < multiClickTimeout {
		c.count++
		if c.count > 3 {
			c.count = 1
		}
	} else {
		c.count = 1
	}

	c.lastTime = now
	c.lastX = x
	c.lastY = y

	switch c.count {
	case 1:
		return singleClick
	case 2:
		return doubleClick
	default:
		return tripleClick
	}
}

func (c *clickDetector) reset() {
	*c = clickDetector{now: c.now}
}
