package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grabshow/storefront/internal/entity"
)

func TestLoadEventsReplacesMirror(t *testing.T) {
	events := &fakeEventGateway{events: []*entity.Event{
		{ID: 1, Title: "Movie Night", Price: 12},
		{ID: 2, Title: "Concert", Price: 80},
	}}
	svc := NewCatalogService(events)

	sess := testSession(7)
	sess.SetEvents([]*entity.Event{{ID: 99, Title: "Stale", Price: 1}})

	got, err := svc.LoadEvents(context.Background(), sess)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	// Wholesale replacement: the stale entry is gone.
	assert.Nil(t, sess.EventByID(99))
	assert.NotNil(t, sess.EventByID(1))
}

func TestLoadEventsReloadIdempotent(t *testing.T) {
	events := &fakeEventGateway{events: []*entity.Event{
		{ID: 1, Title: "Movie Night", Price: 12},
		{ID: 2, Title: "Concert", Price: 80},
	}}
	svc := NewCatalogService(events)

	sess := testSession(7)

	first, err := svc.LoadEvents(context.Background(), sess)
	require.NoError(t, err)
	second, err := svc.LoadEvents(context.Background(), sess)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, events.getAllN)
}

func TestLoadEventsFailureKeepsMirror(t *testing.T) {
	events := &fakeEventGateway{failAll: true}
	svc := NewCatalogService(events)

	sess := testSession(7)
	sess.SetEvents([]*entity.Event{{ID: 1, Title: "Movie Night", Price: 12}})

	_, err := svc.LoadEvents(context.Background(), sess)
	assert.Error(t, err)

	// Stale mirror beats no mirror.
	assert.NotNil(t, sess.EventByID(1))
}

func TestEventByIDMirrorFirst(t *testing.T) {
	events := &fakeEventGateway{events: []*entity.Event{
		{ID: 1, Title: "Movie Night", Price: 12},
	}}
	svc := NewCatalogService(events)

	sess := testSession(7)
	sess.SetEvents(events.events)

	got := svc.EventByID(context.Background(), sess, 1)
	require.NotNil(t, got)
	assert.Equal(t, "Movie Night", got.Title)
	assert.Zero(t, events.getByIDN)
}

func TestEventByIDFallsBackToRemote(t *testing.T) {
	events := &fakeEventGateway{events: []*entity.Event{
		{ID: 5, Title: "Late Addition", Price: 30},
	}}
	svc := NewCatalogService(events)

	sess := testSession(7)

	got := svc.EventByID(context.Background(), sess, 5)
	require.NotNil(t, got)
	assert.Equal(t, "Late Addition", got.Title)
	assert.Equal(t, 1, events.getByIDN)
}

func TestEventByIDUnresolvedIsNil(t *testing.T) {
	events := &fakeEventGateway{failByID: true}
	svc := NewCatalogService(events)

	sess := testSession(7)

	assert.Nil(t, svc.EventByID(context.Background(), sess, 42))
}
