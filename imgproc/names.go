package imgproc

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/srlehn/imgresize/internal/consts"
)

// namer hands out output file names from a strictly increasing
// millisecond clock, two calls within one tick get different names.
type namer struct {
	now  func() time.Time
	last atomic.Int64
}

func newNamer(now func() time.Time) *namer {
	if now == nil {
		now = time.Now
	}
	return &namer{now: now}
}

func (n *namer) next() string {
	for {
		last := n.last.Load()
		ms := n.now().UnixMilli()
		if ms <= last {
			ms = last + 1
		}
		if n.last.CompareAndSwap(last, ms) {
			return consts.ResizedPrefix + strconv.FormatInt(ms, 10) + `.` + consts.ResizedFileExt
		}
	}
}
