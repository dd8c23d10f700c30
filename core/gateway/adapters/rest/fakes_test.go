package rest

import (
	"context"

	"app/core/gateway/domain"
)

// fakeAccounts returns canned responses per operation and counts calls.
type fakeAccounts struct {
	registerResp domain.Payload
	registerErr  error

	authResp domain.Payload
	authErr  error
	auths    int

	deleteResp  domain.Payload
	deleteErr   error
	deletes     int
	deleteToken string

	fetchResp domain.Payload
	fetchErr  error
	fetches   int

	updateResp domain.Payload
	updateErr  error
	updates    int
}

func (f *fakeAccounts) Register(ctx context.Context, payload domain.Payload) (domain.Payload, error) {
	return f.registerResp, f.registerErr
}

func (f *fakeAccounts) Authenticate(ctx context.Context, credentials domain.Payload) (domain.Payload, error) {
	f.auths++
	return f.authResp, f.authErr
}

func (f *fakeAccounts) DeleteByUsername(ctx context.Context, username, token string) (domain.Payload, error) {
	f.deletes++
	f.deleteToken = token
	return f.deleteResp, f.deleteErr
}

func (f *fakeAccounts) FetchByUsername(ctx context.Context, username, token string) (domain.Payload, error) {
	f.fetches++
	return f.fetchResp, f.fetchErr
}

func (f *fakeAccounts) UpdateByUsername(ctx context.Context, username string, partial domain.Payload, token string) (domain.Payload, error) {
	f.updates++
	return f.updateResp, f.updateErr
}

type fakeProfiles struct {
	createResp domain.Payload
	createErr  error
	creates    int

	fetchResp domain.Payload
	fetchErr  error

	updateResp domain.Payload
	updateErr  error
	updates    int

	deleteErr error
	deletes   int
}

func (f *fakeProfiles) CreateProfile(ctx context.Context, username string, payload domain.Payload) (domain.Payload, error) {
	f.creates++
	return f.createResp, f.createErr
}

func (f *fakeProfiles) FetchProfile(ctx context.Context, username string) (domain.Payload, error) {
	return f.fetchResp, f.fetchErr
}

func (f *fakeProfiles) UpdateProfile(ctx context.Context, username string, payload domain.Payload) (domain.Payload, error) {
	f.updates++
	return f.updateResp, f.updateErr
}

func (f *fakeProfiles) DeleteProfile(ctx context.Context, username string) error {
	f.deletes++
	return f.deleteErr
}

type fakeEvents struct {
	published int
	lastEmail string
}

func (f *fakeEvents) PublishDeletion(ctx context.Context, username, email string) {
	f.published++
	f.lastEmail = email
}
