package domain

import "context"

// fakeAccounts counts calls and returns canned responses or errors.
type fakeAccounts struct {
	registerResp Payload
	registerErr  error
	registers    int

	authResp Payload
	authErr  error

	deleteResp Payload
	deleteErr  error
	deletes    int

	fetchResp Payload
	fetchErr  error
	fetches   int

	updateResp    Payload
	updateErr     error
	updates       int
	updatePayload Payload
}

func (f *fakeAccounts) Register(ctx context.Context, payload Payload) (Payload, error) {
	f.registers++
	return f.registerResp, f.registerErr
}

func (f *fakeAccounts) Authenticate(ctx context.Context, credentials Payload) (Payload, error) {
	return f.authResp, f.authErr
}

func (f *fakeAccounts) DeleteByUsername(ctx context.Context, username, token string) (Payload, error) {
	f.deletes++
	return f.deleteResp, f.deleteErr
}

func (f *fakeAccounts) FetchByUsername(ctx context.Context, username, token string) (Payload, error) {
	f.fetches++
	return f.fetchResp, f.fetchErr
}

func (f *fakeAccounts) UpdateByUsername(ctx context.Context, username string, partial Payload, token string) (Payload, error) {
	f.updates++
	f.updatePayload = partial
	return f.updateResp, f.updateErr
}

type fakeProfiles struct {
	createResp Payload
	createErr  error
	creates    int

	fetchResp Payload
	fetchErr  error

	updateResp    Payload
	updateErr     error
	updates       int
	updatePayload Payload

	deleteErr error
	deletes   int
}

func (f *fakeProfiles) CreateProfile(ctx context.Context, username string, payload Payload) (Payload, error) {
	f.creates++
	return f.createResp, f.createErr
}

func (f *fakeProfiles) FetchProfile(ctx context.Context, username string) (Payload, error) {
	return f.fetchResp, f.fetchErr
}

func (f *fakeProfiles) UpdateProfile(ctx context.Context, username string, payload Payload) (Payload, error) {
	f.updates++
	f.updatePayload = payload
	return f.updateResp, f.updateErr
}

func (f *fakeProfiles) DeleteProfile(ctx context.Context, username string) error {
	f.deletes++
	return f.deleteErr
}

type publishedEvent struct {
	username string
	email    string
}

type fakeEvents struct {
	published []publishedEvent
}

func (f *fakeEvents) PublishDeletion(ctx context.Context, username, email string) {
	f.published = append(f.published, publishedEvent{username: username, email: email})
}
