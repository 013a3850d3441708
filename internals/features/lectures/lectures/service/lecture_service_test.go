package service

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"learnsmate_backend/internals/exceptions"
	categoryModel "learnsmate_backend/internals/features/lectures/lecture_categories/model"
	"learnsmate_backend/internals/features/lectures/lectures/dto"
	"learnsmate_backend/internals/features/lectures/lectures/model"
	"learnsmate_backend/internals/features/lectures/lectures/repository"
	videoModel "learnsmate_backend/internals/features/lectures/video_by_lectures/model"
	memberDto "learnsmate_backend/internals/features/users/members/dto"
	memberService "learnsmate_backend/internals/features/users/members/service"
	helper "learnsmate_backend/internals/helpers"
	"learnsmate_backend/internals/testutil"
)

type memoryStorage struct {
	mu      sync.Mutex
	objects map[string]int
}

func (m *memoryStorage) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = len(b)
	return nil
}

func (m *memoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memoryStorage) PublicURL(key string) string { return "mem://" + key }

func (m *memoryStorage) KeyFromPublicURL(u string) (string, error) {
	return strings.TrimPrefix(u, "mem://"), nil
}

func setup(t *testing.T) (*LectureService, *gorm.DB, *memoryStorage, int64) {
	t.Helper()
	db := testutil.NewTestDB(t)
	st := &memoryStorage{objects: map[string]int{}}

	reg := memberDto.RegisterMemberRequest{MemberType: "TUTOR", MemberEmail: "tutor@learnsmate.io", MemberPassword: "password123", MemberName: "tutor"}
	tutor, err := memberService.NewMemberService(db).Register(context.Background(), reg)
	require.NoError(t, err)
	return NewLectureService(db, st), db, st, tutor.MemberCode
}

func lectureReq() dto.RegisterLectureRequest {
	return dto.RegisterLectureRequest{LectureTitle: "Practical Go", LecturePrice: 50000, LectureLevel: model.LevelBeginner}
}

func TestRegisterLectureWithCategories(t *testing.T) {
	svc, db, _, tutor := setup(t)
	ctx := context.Background()

	cat := categoryModel.LectureCategoryModel{LectureCategoryName: "Backend"}
	require.NoError(t, db.Create(&cat).Error)

	req := lectureReq()
	req.CategoryCodes = []int64{cat.LectureCategoryCode, cat.LectureCategoryCode}
	resp, err := svc.Register(ctx, tutor, req)
	require.NoError(t, err)
	assert.True(t, resp.LectureStatus)
	assert.False(t, resp.LectureConfirmStatus)

	detail, err := svc.GetDetail(ctx, resp.LectureCode)
	require.NoError(t, err)
	require.Len(t, detail.Categories, 1)
	assert.Equal(t, "Backend", detail.Categories[0].LectureCategoryName)

	req.CategoryCodes = []int64{999}
	_, err = svc.Register(ctx, tutor, req)
	assert.True(t, exceptions.Is(err, exceptions.CategoryNotFound))

	var n int64
	require.NoError(t, db.Model(&model.LectureModel{}).Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestRegisterLectureUnknownTutor(t *testing.T) {
	svc, _, _, _ := setup(t)

	_, err := svc.Register(context.Background(), 4242, lectureReq())
	assert.True(t, exceptions.Is(err, exceptions.TutorNotFound))
}

func TestGetDetailCountsClicksAndVideos(t *testing.T) {
	svc, db, _, tutor := setup(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, tutor, lectureReq())
	require.NoError(t, err)
	for _, title := range []string{"intro", "goroutines"} {
		require.NoError(t, db.Create(&videoModel.VideoByLectureModel{VideoTitle: title, VideoLink: "https://v/" + title, LectureCode: resp.LectureCode}).Error)
	}

	_, err = svc.GetDetail(ctx, resp.LectureCode)
	require.NoError(t, err)
	detail, err := svc.GetDetail(ctx, resp.LectureCode)
	require.NoError(t, err)

	assert.Equal(t, 2, detail.LectureClickCount)
	require.NotNil(t, detail.VideoCount)
	assert.Equal(t, int64(2), *detail.VideoCount)

	_, err = svc.GetDetail(ctx, 999)
	assert.True(t, exceptions.Is(err, exceptions.LectureNotFound))
}

func TestEditOwnershipConfirmAndDeactivate(t *testing.T) {
	svc, _, _, tutor := setup(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, tutor, lectureReq())
	require.NoError(t, err)

	title := "Advanced Go"
	other := tutor + 100
	_, err = svc.Edit(ctx, resp.LectureCode, dto.EditLectureRequest{LectureTitle: &title}, &other)
	assert.True(t, exceptions.Is(err, exceptions.Forbidden))

	edited, err := svc.Edit(ctx, resp.LectureCode, dto.EditLectureRequest{LectureTitle: &title}, &tutor)
	require.NoError(t, err)
	assert.Equal(t, "Advanced Go", edited.LectureTitle)

	confirmed, err := svc.Confirm(ctx, resp.LectureCode)
	require.NoError(t, err)
	assert.True(t, confirmed.LectureConfirmStatus)

	require.NoError(t, svc.Deactivate(ctx, resp.LectureCode, nil))
	m, err := svc.FindByCode(ctx, resp.LectureCode)
	require.NoError(t, err)
	assert.False(t, m.OnSale())
}

func TestListFilters(t *testing.T) {
	svc, _, _, tutor := setup(t)
	ctx := context.Background()

	for _, title := range []string{"Go Basics", "Go Advanced", "SQL"} {
		req := lectureReq()
		req.LectureTitle = title
		_, err := svc.Register(ctx, tutor, req)
		require.NoError(t, err)
	}

	rows, total, err := svc.List(ctx, repository.LectureFilter{Title: "go"}, helper.NewPaging(1, 10, 20, 100))
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, rows, 2)

	confirmed := true
	_, total, err = svc.List(ctx, repository.LectureFilter{ConfirmStatus: &confirmed}, helper.NewPaging(1, 10, 20, 100))
	require.NoError(t, err)
	assert.Zero(t, total)

	_, total, err = svc.ListByTutor(ctx, tutor, helper.NewPaging(1, 10, 20, 100))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestUploadThumbnailReplacesPrevious(t *testing.T) {
	svc, _, st, tutor := setup(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, tutor, lectureReq())
	require.NoError(t, err)

	first, err := svc.UploadThumbnail(ctx, resp.LectureCode, pngHeader(t), &tutor)
	require.NoError(t, err)
	require.NotNil(t, first.LectureImage)
	assert.True(t, strings.HasSuffix(*first.LectureImage, ".webp"))

	second, err := svc.UploadThumbnail(ctx, resp.LectureCode, pngHeader(t), nil)
	require.NoError(t, err)
	assert.NotEqual(t, *first.LectureImage, *second.LectureImage)
	assert.Len(t, st.objects, 1)
}

func pngHeader(t *testing.T) *multipart.FileHeader {
	t.Helper()
	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 40, 30))))

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", "thumb.png")
	require.NoError(t, err)
	_, err = part.Write(img.Bytes())
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(10 << 20)
	require.NoError(t, err)
	return form.File["image"][0]
}
