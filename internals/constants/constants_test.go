package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPublicRoute(t *testing.T) {
	cases := []struct {
		method string
		path   string
		want   bool
	}{
		{"GET", "/voc/list", true},
		{"GET", "/voc/list/", true},
		{"POST", "/voc/filter", true},
		{"GET", "/voc/filter", false},
		{"POST", "/users/login", true},
		{"POST", "/users/members/signup", true},
		{"OPTIONS", "/users/anything", true},
		{"GET", "/users/email/check", true},
		{"GET", "/users/me", false},
		{"POST", "/users-fake/login", false},
		{"PATCH", "/users/mypage/edit/password", true},
		{"GET", "/coupon/coupons", false},
		{"POST", "/payment/notification", true},
		{"DELETE", "/users/send-sms", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsPublicRoute(tc.method, tc.path), "%s %s", tc.method, tc.path)
	}
}

func TestDetectFileTypeFromExt(t *testing.T) {
	assert.Equal(t, FileTypeImage, DetectFileTypeFromExt("thumb.JPG"))
	assert.Equal(t, FileTypeVideo, DetectFileTypeFromExt("intro.mp4"))
	assert.Equal(t, FileTypeDocument, DetectFileTypeFromExt("syllabus.pdf"))
	assert.Equal(t, FileTypeUnknown, DetectFileTypeFromExt("archive.zip"))
}

func TestIsMemberType(t *testing.T) {
	assert.True(t, IsMemberType(MemberTypeStudent))
	assert.True(t, IsMemberType(MemberTypeTutor))
	assert.False(t, IsMemberType(RoleAdmin))
}
