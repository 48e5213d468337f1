package render

import (
	"strconv"

	"github.com/betona1/cafe24-staff-review/internal/widget/review"
)

const (
	labelLoading      = "리뷰를 불러오는 중..."
	labelEmpty        = "아직 등록된 리뷰가 없습니다."
	labelNoMatch      = "조건에 맞는 리뷰가 없습니다."
	labelError        = "리뷰를 불러올 수 없습니다."
	labelPhotoReviews = "포토리뷰"
	labelGalleryAlt   = "포토리뷰 이미지"
	labelReviewImage  = "리뷰 이미지"
	labelStaffPick    = "STAFF PICK"
	labelShowMore     = "더보기"
	labelPrevPage     = "이전 페이지"
	labelNextPage     = "다음 페이지"
	labelSort         = "정렬"
	labelLightbox     = "이미지 보기"
	labelClose        = "닫기"
	glyphStarFilled   = "★"
	glyphStarEmpty    = "☆"
	glyphPrev         = "◀"
	glyphNext         = "▶"
	glyphClose        = "×"
)

var sortLabels = map[review.Sort]string{
	review.SortLatest:     "최신순",
	review.SortRatingHigh: "별점 높은순",
	review.SortRatingLow:  "별점 낮은순",
}

func reviewCountLabel(n int) string {
	return strconv.Itoa(n) + "개 리뷰"
}

func allTabLabel(n int) string {
	return "전체 리뷰 " + strconv.Itoa(n)
}

func photoTabLabel(n int) string {
	return "포토 리뷰 " + strconv.Itoa(n)
}
