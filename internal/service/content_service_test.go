package service

import (
	"context"
	"testing"

	"motherlanka-be/internal/entity"
	"motherlanka-be/internal/repository/unitofwork"
	"motherlanka-be/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContentService(t *testing.T) IContentService {
	t.Helper()
	factory := unitofwork.NewRepositoryFactory(testutil.NewDB(t))
	testutil.Seed(t, factory, testutil.SampleSnapshot())
	return NewContentService(factory)
}

func TestContentService_ListDestinationsOrderedByName(t *testing.T) {
	svc := newContentService(t)

	res, err := svc.ListDestinations(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "Ella", res[0].Name)
	assert.Equal(t, "Galle Fort", res[1].Name)
	assert.NotNil(t, res[0].Images)
	assert.Nil(t, res[0].Image)
}

func TestContentService_ListStays(t *testing.T) {
	svc := newContentService(t)

	res, err := svc.ListStays(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "98 Acres Resort", res[0].Name)
	assert.Equal(t, 45000, res[0].Price)
	assert.Equal(t, []string{}, res[0].Images)
}

func TestContentService_ListExperiencesAndEvents(t *testing.T) {
	ctx := context.Background()
	svc := newContentService(t)

	experiences, err := svc.ListExperiences(ctx)
	require.NoError(t, err)
	require.Len(t, experiences, 1)
	assert.Equal(t, "Whale Watching", experiences[0].Title)
	assert.Equal(t, []string{}, experiences[0].Highlights)

	events, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "2025-08-01", events[0].StartDate)
}

func TestStayImages(t *testing.T) {
	tests := []struct {
		name      string
		images    []string
		image     string
		want      []string
		wantFirst string
	}{
		{name: "gallery wins", images: []string{"a.jpg", "b.jpg"}, image: "c.jpg", want: []string{"a.jpg", "b.jpg"}, wantFirst: "a.jpg"},
		{name: "single image promoted", image: "c.jpg", want: []string{"c.jpg"}, wantFirst: "c.jpg"},
		{name: "nothing", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stayImages(&entity.Stay{Images: tt.images, Image: tt.image})
			assert.Equal(t, tt.want, got)

			first := firstImage(got, tt.image)
			if tt.wantFirst == "" {
				assert.Nil(t, first)
			} else {
				require.NotNil(t, first)
				assert.Equal(t, tt.wantFirst, *first)
			}
		})
	}
}
