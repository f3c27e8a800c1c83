package pricing

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"listing-manager/feature/listing"
	"listing-manager/feature/listing/models"
	"listing-manager/feature/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCompetitors struct {
	quotes []platform.CompetitorQuote
	err    error
}

func (f *fakeCompetitors) CompetitorPrices(ctx context.Context, address string) (platform.CompetitorReport, error) {
	if f.err != nil {
		return platform.CompetitorReport{}, f.err
	}
	return platform.CompetitorReport{Address: address, Competitors: f.quotes}, nil
}

func newTestAgent(t *testing.T, competitors CompetitorSource) (*Agent, *listing.Service) {
	t.Helper()

	store := listing.NewStore(filepath.Join(t.TempDir(), "listings.json"))
	svc := listing.NewService(store, nil, zap.NewNop())
	return NewAgent(svc, competitors, zap.NewNop()), svc
}

func TestRunForListingUndercutsCheapestCompetitor(t *testing.T) {
	agent, svc := newTestAgent(t, &fakeCompetitors{quotes: []platform.CompetitorQuote{
		{Platform: "Airbnb", Price: 120},
		{Platform: "Booking.com", Price: 110},
		{Platform: "Vrbo", Price: 125},
	}})

	l, err := svc.Create(context.Background(), models.CreateRequest{Title: "Loft", Price: 100.0})
	require.NoError(t, err)

	updated, err := agent.RunForListing(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, 109.0, updated.Price)
	assert.Equal(t, 109.0, updated.Metadata["suggested_price"])

	// The suggestion is persisted through the normal update path.
	got, err := svc.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, 109.0, got.Price)
}

func TestRunForListingClampsToConstraints(t *testing.T) {
	cases := []struct {
		name        string
		constraints map[string]any
		want        float64
	}{
		{"min price floor", map[string]any{"min_price": 115.0}, 115},
		{"max price ceiling", map[string]any{"max_price": 105.0}, 105},
		{"within bounds", map[string]any{"min_price": 50.0, "max_price": 200.0}, 109},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			agent, svc := newTestAgent(t, &fakeCompetitors{quotes: []platform.CompetitorQuote{
				{Platform: "Booking.com", Price: 110},
			}})

			l, err := svc.Create(context.Background(), models.CreateRequest{
				Title: "Loft",
				Price: 100.0,
			})
			require.NoError(t, err)
			l, err = svc.Update(context.Background(), l.ID, models.UpdateRequest{
				Metadata: map[string]any{"constraints": tc.constraints},
			})
			require.NoError(t, err)

			updated, err := agent.RunForListing(context.Background(), l.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, updated.Price)
		})
	}
}

func TestRunForListingWithoutQuotesKeepsPrice(t *testing.T) {
	agent, svc := newTestAgent(t, &fakeCompetitors{})

	l, err := svc.Create(context.Background(), models.CreateRequest{Title: "Loft", Price: 80.0})
	require.NoError(t, err)

	updated, err := agent.RunForListing(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, 80.0, updated.Price)
	assert.Equal(t, 80.0, updated.Metadata["suggested_price"])
}

func TestRunForListingCompetitorSourceDown(t *testing.T) {
	agent, svc := newTestAgent(t, &fakeCompetitors{err: errors.New("market data unavailable")})

	l, err := svc.Create(context.Background(), models.CreateRequest{Title: "Loft", Price: 80.0})
	require.NoError(t, err)

	// A failed quote fetch degrades to keeping the current price.
	updated, err := agent.RunForListing(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, 80.0, updated.Price)
}

func TestRunForListingNeverNegative(t *testing.T) {
	agent, svc := newTestAgent(t, &fakeCompetitors{quotes: []platform.CompetitorQuote{
		{Platform: "Airbnb", Price: 0.5},
	}})

	l, err := svc.Create(context.Background(), models.CreateRequest{Title: "Loft", Price: 10.0})
	require.NoError(t, err)

	updated, err := agent.RunForListing(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.Price)
}

func TestRunForListingNotFound(t *testing.T) {
	agent, _ := newTestAgent(t, &fakeCompetitors{})

	_, err := agent.RunForListing(context.Background(), "missing")
	assert.ErrorIs(t, err, listing.ErrNotFound)
}

func TestRunAllUpdatesEveryListing(t *testing.T) {
	agent, svc := newTestAgent(t, &fakeCompetitors{quotes: []platform.CompetitorQuote{
		{Platform: "Airbnb", Price: 120},
	}})

	for _, title := range []string{"a", "b", "c"} {
		_, err := svc.Create(context.Background(), models.CreateRequest{Title: title, Price: 100.0})
		require.NoError(t, err)
	}

	updated, err := agent.RunAll(context.Background())
	require.NoError(t, err)
	require.Len(t, updated, 3)
	for _, l := range updated {
		assert.Equal(t, 119.0, l.Price)
	}
}

func TestSuggestPriceRounding(t *testing.T) {
	got := suggestPrice(100, []platform.CompetitorQuote{{Platform: "x", Price: 110.559}}, constraints{})
	assert.Equal(t, 109.56, got)
}
