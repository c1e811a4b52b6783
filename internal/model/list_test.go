package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"library-manager/internal/model"
)

func TestNormalizeListParams(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name          string
		sortDirection string
		page, size    int
		want          model.ListParams
	}{
		{
			name:          "defaults",
			sortDirection: "",
			want:          model.ListParams{Page: 1, PageSize: 10},
		},
		{
			name:          "asc is the only ascending direction",
			sortDirection: "asc",
			page:          2,
			size:          5,
			want:          model.ListParams{SortAsc: true, Page: 2, PageSize: 5},
		},
		{
			name:          "anything else sorts descending",
			sortDirection: "ASC",
			page:          2,
			size:          5,
			want:          model.ListParams{Page: 2, PageSize: 5},
		},
		{
			name:          "non-positive page and size fall back",
			sortDirection: "desc",
			page:          -1,
			size:          0,
			want:          model.ListParams{Page: 1, PageSize: 10},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := model.NormalizeListParams("", "", tt.sortDirection, tt.page, tt.size)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestListParams_Offset(t *testing.T) {
	t.Parallel()
	p := model.NormalizeListParams("", "", "", 3, 10)
	require.Equal(t, 20, p.Offset())
}

func TestNewListMeta(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name       string
		totalItems int
		pageSize   int
		wantPages  int
	}{
		{name: "exact fit", totalItems: 20, pageSize: 10, wantPages: 2},
		{name: "partial last page", totalItems: 5, pageSize: 2, wantPages: 3},
		{name: "empty", totalItems: 0, pageSize: 10, wantPages: 0},
		{name: "single item", totalItems: 1, pageSize: 10, wantPages: 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			meta := model.NewListMeta(tt.totalItems, tt.pageSize)
			require.Equal(t, tt.totalItems, meta.TotalItems)
			require.Equal(t, tt.wantPages, meta.NumOfPages)
		})
	}
}
