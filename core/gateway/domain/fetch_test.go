package domain

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchUserMergesBothSides(t *testing.T) {
	accounts := &fakeAccounts{fetchResp: Payload{"usuario": "alice", "correo": "a@b.com"}}
	profiles := &fakeProfiles{fetchResp: Payload{"apodo": "ace"}}
	app := NewApp(accounts, profiles, &fakeEvents{})

	result := app.FetchUser(context.Background(), "alice", "tok")

	assert.Equal(t, "alice", result.Username)
	assert.Equal(t, Payload{"usuario": "alice", "correo": "a@b.com"}, result.Security)
	assert.Equal(t, Payload{"apodo": "ace"}, result.Profile)
}

func TestFetchUserProfileFailureDegrades(t *testing.T) {
	accounts := &fakeAccounts{fetchResp: Payload{"usuario": "alice"}}
	profiles := &fakeProfiles{fetchErr: &RemoteError{Status: http.StatusNotFound}}
	app := NewApp(accounts, profiles, &fakeEvents{})

	result := app.FetchUser(context.Background(), "alice", "tok")

	assert.Equal(t, "alice", result.Username)
	assert.NotNil(t, result.Security)
	assert.Nil(t, result.Profile, "a failed sub-fetch omits its side")
}

func TestFetchUserSecurityFailureDegrades(t *testing.T) {
	accounts := &fakeAccounts{fetchErr: &RemoteError{Status: http.StatusForbidden}}
	profiles := &fakeProfiles{fetchResp: Payload{"apodo": "ace"}}
	app := NewApp(accounts, profiles, &fakeEvents{})

	result := app.FetchUser(context.Background(), "alice", "tok")

	assert.Nil(t, result.Security)
	assert.Equal(t, Payload{"apodo": "ace"}, result.Profile)
}

func TestFetchUserBothFailuresStillSucceed(t *testing.T) {
	accounts := &fakeAccounts{fetchErr: &RemoteError{Status: http.StatusInternalServerError}}
	profiles := &fakeProfiles{fetchErr: &RemoteError{Status: http.StatusInternalServerError}}
	app := NewApp(accounts, profiles, &fakeEvents{})

	result := app.FetchUser(context.Background(), "alice", "tok")

	assert.Equal(t, "alice", result.Username)
	assert.Nil(t, result.Security)
	assert.Nil(t, result.Profile)
}

func TestFetchUserEmptyProfileOmitted(t *testing.T) {
	accounts := &fakeAccounts{fetchResp: Payload{"usuario": "alice"}}
	profiles := &fakeProfiles{fetchResp: Payload{}}
	app := NewApp(accounts, profiles, &fakeEvents{})

	result := app.FetchUser(context.Background(), "alice", "tok")

	assert.Nil(t, result.Profile, "an empty profile body means no profile")
}
