package services

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/lexi-cli/internal/core/domain"
)

// mockLookupService implements driving.LookupService for testing.
type mockLookupService struct {
	lookupFn func(ctx context.Context, word string) (*domain.DictionaryEntry, error)
	calls    atomic.Int32
}

func (m *mockLookupService) Lookup(ctx context.Context, word string) (*domain.DictionaryEntry, error) {
	m.calls.Add(1)
	return m.lookupFn(ctx, word)
}

func newFixtureController() *Controller {
	return NewController(NewLookupService(fixtureClient()))
}

// assertExclusive checks that an entry and an error never coexist.
func assertExclusive(t *testing.T, state domain.LookupState) {
	t.Helper()
	assert.False(t, state.HasEntry() && state.HasError(), "entry and error set together")
}

func TestController_InitialState(t *testing.T) {
	c := newFixtureController()

	assert.Equal(t, "", c.Query())
	assert.Equal(t, domain.OutcomeIdle, c.State().Outcome())
	assert.False(t, c.State().HasEntry())
	assert.False(t, c.State().HasError())
}

func TestController_SetQuery(t *testing.T) {
	c := newFixtureController()

	c.SetQuery("hello")
	assert.Equal(t, "hello", c.Query())

	c.SetQuery("")
	assert.Equal(t, "", c.Query())

	// SetQuery never touches the settled state.
	c.SetQuery("test")
	c.Search(context.Background())
	c.SetQuery("other")
	assert.Equal(t, domain.OutcomeSuccess, c.State().Outcome())
}

func TestController_Search_Success(t *testing.T) {
	c := newFixtureController()
	c.SetQuery("test")

	state := c.Search(context.Background())

	require.True(t, state.HasEntry())
	assert.Equal(t, "test", state.Entry().Word)
	assert.Equal(t, "noun", state.Entry().Meanings[0].PartOfSpeech)
	assert.Equal(t, "A challenge, trial.", state.Entry().FirstDefinition())
	assert.False(t, state.HasError())
	assertExclusive(t, state)
}

func TestController_Search_EmptyQuery(t *testing.T) {
	for _, query := range []string{"", " ", "\t\n  "} {
		t.Run(query, func(t *testing.T) {
			lookup := &mockLookupService{lookupFn: func(context.Context, string) (*domain.DictionaryEntry, error) {
				t.Fatal("lookup must not be called for an empty query")
				return nil, nil
			}}
			c := NewController(lookup)
			c.SetQuery(query)

			state := c.Search(context.Background())

			assert.Equal(t, domain.OutcomeValidationError, state.Outcome())
			assert.Equal(t, domain.MsgEmptyQuery, state.Message())
			assert.Nil(t, state.Entry())
			assert.Zero(t, lookup.calls.Load())
		})
	}
}

func TestController_Search_ServiceError(t *testing.T) {
	c := newFixtureController()
	c.SetQuery("errorTest")

	state := c.Search(context.Background())

	assert.Equal(t, domain.OutcomeServiceError, state.Outcome())
	assert.Equal(t, domain.MsgWordNotAvailable, state.Message())
	assert.Nil(t, state.Entry())
}

func TestController_Search_TransportError(t *testing.T) {
	c := newFixtureController()
	c.SetQuery("fetchErrorTest")

	state := c.Search(context.Background())

	assert.Equal(t, domain.OutcomeTransportError, state.Outcome())
	assert.Equal(t, domain.MsgFetchFailed, state.Message())
	assert.Nil(t, state.Entry())
}

func TestController_Search_ClearsPreviousOutcome(t *testing.T) {
	c := newFixtureController()

	c.SetQuery("test")
	require.True(t, c.Search(context.Background()).HasEntry())

	c.SetQuery("errorTest")
	state := c.Search(context.Background())
	assert.False(t, state.HasEntry())
	assert.Equal(t, domain.MsgWordNotAvailable, state.Message())
	assertExclusive(t, state)

	c.SetQuery("test")
	state = c.Search(context.Background())
	assert.True(t, state.HasEntry())
	assert.False(t, state.HasError())

	c.SetQuery("   ")
	state = c.Search(context.Background())
	assert.False(t, state.HasEntry())
	assert.Equal(t, domain.MsgEmptyQuery, state.Message())
}

func TestController_Search_OneRequestPerSearch(t *testing.T) {
	client := fixtureClient()
	c := NewController(NewLookupService(client))
	c.SetQuery("test")

	c.Search(context.Background())
	c.Search(context.Background())

	assert.Equal(t, []string{"test", "test"}, client.calls)
}

func TestController_Search_SendsRawQuery(t *testing.T) {
	client := fixtureClient()
	c := NewController(NewLookupService(client))
	c.SetQuery(" test ")

	c.Search(context.Background())

	assert.Equal(t, []string{" test "}, client.calls)
}

func TestController_Begin_ClearsStateBeforeRequest(t *testing.T) {
	c := newFixtureController()
	c.SetQuery("errorTest")
	c.Search(context.Background())
	require.True(t, c.State().HasError())

	c.SetQuery("test")
	ticket, ok := c.Begin()

	require.True(t, ok)
	assert.Equal(t, "test", ticket.Word)
	assert.Equal(t, domain.OutcomeIdle, c.State().Outcome())
}

func TestController_Begin_TokensIncrease(t *testing.T) {
	c := newFixtureController()
	c.SetQuery("test")

	first, _ := c.Begin()
	second, _ := c.Begin()
	c.SetQuery("")
	third, ok := c.Begin()

	assert.False(t, ok)
	assert.Less(t, first.Token, second.Token)
	assert.Less(t, second.Token, third.Token)
}

func TestController_Settle_DiscardsStaleResult(t *testing.T) {
	c := newFixtureController()
	ctx := context.Background()

	c.SetQuery("test")
	older, ok := c.Begin()
	require.True(t, ok)

	c.SetQuery("errorTest")
	newer, ok := c.Begin()
	require.True(t, ok)

	newerResult := c.Run(ctx, newer)
	olderResult := c.Run(ctx, older)

	assert.True(t, c.Settle(newerResult))
	assert.False(t, c.Settle(olderResult))

	state := c.State()
	assert.Equal(t, domain.OutcomeServiceError, state.Outcome())
	assert.Nil(t, state.Entry())
}

func TestController_Settle_DiscardsResultAfterValidationFailure(t *testing.T) {
	c := newFixtureController()
	ctx := context.Background()

	c.SetQuery("test")
	pending, ok := c.Begin()
	require.True(t, ok)

	c.SetQuery("")
	c.Search(ctx)

	assert.False(t, c.Settle(c.Run(ctx, pending)))
	assert.Equal(t, domain.MsgEmptyQuery, c.State().Message())
}

func TestController_Run_NilLookup(t *testing.T) {
	c := NewController(nil)
	c.SetQuery("test")

	state := c.Search(context.Background())

	assert.Equal(t, domain.OutcomeTransportError, state.Outcome())
}

func TestController_Run_CancelledContext(t *testing.T) {
	lookup := &mockLookupService{lookupFn: func(ctx context.Context, _ string) (*domain.DictionaryEntry, error) {
		return nil, ctx.Err()
	}}
	c := NewController(lookup)
	c.SetQuery("test")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	state := c.Search(ctx)
	assert.Equal(t, domain.OutcomeTransportError, state.Outcome())
}

func TestController_Search_OutOfOrderCompletion(t *testing.T) {
	release := make(chan struct{})
	lookup := &mockLookupService{lookupFn: func(_ context.Context, word string) (*domain.DictionaryEntry, error) {
		if word == "slow" {
			<-release
		}
		entry := testEntry(word)
		return &entry, nil
	}}
	c := NewController(lookup)

	c.SetQuery("slow")
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Search(context.Background())
	}()

	// Wait until the slow lookup has been issued.
	require.Eventually(t, func() bool { return lookup.calls.Load() == 1 }, time.Second, time.Millisecond)

	c.SetQuery("fast")
	state := c.Search(context.Background())
	require.True(t, state.HasEntry())
	assert.Equal(t, "fast", state.Entry().Word)

	close(release)
	wg.Wait()

	assert.Equal(t, "fast", c.State().Entry().Word)
}

func TestController_ConcurrentSearches(t *testing.T) {
	c := newFixtureController()
	words := []string{"test", "errorTest", "fetchErrorTest", "", "test"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c.SetQuery(words[n%len(words)])
			assertExclusive(t, c.Search(context.Background()))
		}(i)
	}
	wg.Wait()

	assertExclusive(t, c.State())
}
