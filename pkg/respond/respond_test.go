package respond

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	res := Success(map[string]string{"k": "v"}, 200)

	assert.True(t, res.Success)
	assert.Equal(t, 200, res.StatusCode)
	assert.Empty(t, res.Message)
	assert.Equal(t, "v", res.Data["k"])
	assert.False(t, res.Timestamp.IsZero())
}

func TestError(t *testing.T) {
	res := Error(404, "not found")

	assert.False(t, res.Success)
	assert.Equal(t, 404, res.StatusCode)
	assert.Equal(t, "not found", res.Message)
	assert.False(t, res.Timestamp.IsZero())
}

func TestPage_TotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		pageSize int
		want     int
	}{
		{name: "exact division", total: 40, pageSize: 10, want: 4},
		{name: "remainder rounds up", total: 41, pageSize: 10, want: 5},
		{name: "less than one page", total: 3, pageSize: 10, want: 1},
		{name: "empty", total: 0, pageSize: 10, want: 0},
		{name: "zero page size", total: 10, pageSize: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Page([]int{}, 1, tt.pageSize, tt.total, 200)

			assert.Equal(t, tt.want, res.TotalPages)
			assert.Equal(t, tt.total, res.Total)
			assert.Equal(t, tt.pageSize, res.PageSize)
			assert.True(t, res.Success)
		})
	}
}

func TestPage_CarriesItems(t *testing.T) {
	items := []string{"a", "b"}
	res := Page(items, 2, 2, 6, 200)

	assert.Equal(t, items, res.Data)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 3, res.TotalPages)
}
