package generate

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"floorplan-server/internal/program"
	"floorplan-server/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(nil, NewCache(nil, time.Minute), slog.Default())
}

func TestRequestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		request Request
		wantErr bool
	}{
		{"valid", Request{Width: 12, Depth: 10, Floors: 1}, false},
		{"width at lower bound", Request{Width: 4, Depth: 10, Floors: 1}, true},
		{"width at upper bound", Request{Width: 200, Depth: 10, Floors: 1}, true},
		{"depth too small", Request{Width: 12, Depth: 3, Floors: 1}, true},
		{"depth too large", Request{Width: 12, Depth: 250, Floors: 1}, true},
		{"floors too small", Request{Width: 12, Depth: 10, Floors: 0}, true},
		{"floors too large", Request{Width: 12, Depth: 10, Floors: 4}, true},
		{"max floors allowed", Request{Width: 12, Depth: 10, Floors: 3}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, errors.ErrorTypeValidation, errors.GetType(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerate_EndToEnd(t *testing.T) {
	service := newTestService()

	result, err := service.Generate(context.Background(), Request{
		Prompt: "A modern 2 bedroom, 1 bathroom house with an open-plan kitchen and a home office",
		Width:  14,
		Depth:  9,
		Floors: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, program.HousingProgram{
		Bedrooms:  2,
		Bathrooms: 1,
		Office:    true,
		OpenPlan:  true,
		Style:     program.StyleModern,
	}, result.Meta.Program)

	assert.Equal(t, 14.0, result.Footprint.Width)
	assert.Equal(t, 9.0, result.Footprint.Depth)
	assert.Equal(t, 3.0, result.Footprint.Height)
	assert.Equal(t, LayoutNote, result.Meta.Note)

	require.Len(t, result.Rooms, 7)
	names := make(map[string]int)
	for _, room := range result.Rooms {
		names[room.Name]++
	}
	assert.Equal(t, map[string]int{
		"Living": 1, "Kitchen": 1, "Dining": 1,
		"Bedroom 1": 1, "Bedroom 2": 1,
		"Bath 1": 1, "Office": 1,
	}, names)
}

func TestGenerate_DefaultProgramFromEmptyPrompt(t *testing.T) {
	service := newTestService()

	result, err := service.Generate(context.Background(), Request{
		Prompt: "",
		Width:  12,
		Depth:  10,
		Floors: 1,
	})
	require.NoError(t, err)

	// Defaults: 3 bedrooms, 2 bathrooms, no office, no open plan.
	assert.Equal(t, 3, result.Meta.Program.Bedrooms)
	assert.Equal(t, 2, result.Meta.Program.Bathrooms)
	assert.False(t, result.Meta.Program.Office)
	assert.Equal(t, program.StyleNeutral, result.Meta.Program.Style)
	assert.Len(t, result.Rooms, 8)
}

func TestGenerate_DeterministicAcrossCalls(t *testing.T) {
	service := newTestService()
	req := Request{Prompt: "traditional 4 bed 2 bath", Width: 16, Depth: 12, Floors: 2}

	first, err := service.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := service.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHistory_UnavailableWithoutDatabase(t *testing.T) {
	service := newTestService()

	_, err := service.History(context.Background(), 10)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeExternal, errors.GetType(err))

	_, err = service.PurgeHistory(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeExternal, errors.GetType(err))
}
