package exceptions

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCommonExceptionMessage(t *testing.T) {
	err := New(CouponNotFound)
	assert.Equal(t, "coupon not found", err.Error())

	detailed := WithDetail(StudentNotFound, "student_code=7")
	assert.Equal(t, "student not found: student_code=7", detailed.Error())
}

func TestIsThroughWrapping(t *testing.T) {
	err := errors.Wrap(New(CouponNotFound), "use issued coupon")

	assert.True(t, Is(err, CouponNotFound))
	assert.False(t, Is(err, LectureNotFound))

	ce, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, 404, ce.StatusEnum.Code)
}

func TestIsPlainError(t *testing.T) {
	assert.False(t, Is(errors.New("boom"), InternalError))
}
