package eval

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// Grade is a graded relevance judgment. Grades in [0, MaxGrade] carry gain;
// negative grades mark documents that were judged but must not be rewarded.
type Grade int32

// MaxGrade is the largest grade for which 2^grade is computed.
const MaxGrade Grade = 30

// ErrGradeRange is the cause of every grade that cannot be turned into gain.
var ErrGradeRange = errors.New("relevance grade out of range")

// ParseGrade reads a base-10 relevance grade. Any negative grade that fits
// in 32 bits is accepted; positive grades must not exceed MaxGrade.
func ParseGrade(s string) (Grade, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "relevance %q is not an integer", s)
	}
	return NewGrade(v)
}

// NewGrade checks that v lies in [math.MinInt32, MaxGrade] before
// narrowing it to a Grade.
func NewGrade(v int64) (Grade, error) {
	if v < math.MinInt32 {
		return 0, errors.Wrapf(ErrGradeRange, "relevance %d is below %d", v, math.MinInt32)
	}
	if v > int64(MaxGrade) {
		return 0, errors.Wrapf(ErrGradeRange, "relevance %d exceeds %d", v, MaxGrade)
	}
	return Grade(v), nil
}

// Excluded reports whether the grade marks a judged-but-excluded document.
func (g Grade) Excluded() bool {
	return g < 0
}

// Exp2 returns 2^g. Only grades in [0, MaxGrade] have a power of two.
func (g Grade) Exp2() (float64, error) {
	if g < 0 || g > MaxGrade {
		return 0, errors.Wrapf(ErrGradeRange, "cannot compute 2^%d", g)
	}
	return float64(uint64(1) << uint(g)), nil
}

// gain is 2^g - 1. The metric functions only ever see validated gains, so a
// grade outside the range here is a programming error.
func (g Grade) gain() float64 {
	v, err := g.Exp2()
	if err != nil {
		panic(err)
	}
	return v - 1
}
