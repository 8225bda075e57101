package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"helpcenter/internal/domain"
)

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name        string
		totalCount  int
		pageSize    int
		currentPage int
		want        domain.PageMeta
	}{
		{
			name:       "empty result set",
			totalCount: 0, pageSize: 25, currentPage: 1,
			want: domain.PageMeta{TotalCount: 0, TotalPages: 0, CurrentPage: 1},
		},
		{
			name:       "exactly one page",
			totalCount: 25, pageSize: 25, currentPage: 1,
			want: domain.PageMeta{TotalCount: 25, TotalPages: 1, CurrentPage: 1},
		},
		{
			name:       "partial last page rounds up",
			totalCount: 26, pageSize: 25, currentPage: 2,
			want: domain.PageMeta{TotalCount: 26, TotalPages: 2, CurrentPage: 2},
		},
		{
			name:       "page past the end keeps true totals",
			totalCount: 3, pageSize: 25, currentPage: 9999,
			want: domain.PageMeta{TotalCount: 3, TotalPages: 1, CurrentPage: 9999},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NewPageMeta(tt.totalCount, tt.pageSize, tt.currentPage))
		})
	}
}

func TestArticlePatch_IsEmpty(t *testing.T) {
	assert.True(t, domain.ArticlePatch{}.IsEmpty())

	title := "Title"
	assert.False(t, domain.ArticlePatch{Title: &title}.IsEmpty())

	meta := domain.ArticleMeta{Tags: []string{"faq"}}
	assert.False(t, domain.ArticlePatch{Meta: &meta}.IsEmpty())
}

func TestAccountDisplayName(t *testing.T) {
	account := domain.Account{ID: "42a0", Name: "Acme Corp"}
	assert.Equal(t, "#42a0 Acme Corp", account.DisplayName())
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, domain.IsValidStatus(domain.StatusDraft))
	assert.True(t, domain.IsValidStatus(domain.StatusPublished))
	assert.True(t, domain.IsValidStatus(domain.StatusArchived))
	assert.False(t, domain.IsValidStatus("pending"))
	assert.False(t, domain.IsValidStatus(""))
}
