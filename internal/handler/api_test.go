package handler

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAPIHandler_Routes(t *testing.T) {
	env := newTestEnv(t, nil)

	rr := env.do(t, http.MethodGet, "/api", "", nil)
	expectStatus(t, rr, http.StatusOK)
	if diff := cmp.Diff(apiRoutes, decode[[]string](t, rr)); diff != "" {
		t.Errorf("routes mismatch (-want +got):\n%s", diff)
	}
}

func TestAPIHandler_Rooms(t *testing.T) {
	env := newTestEnv(t, nil)
	alice, _ := env.signUp(t, "alice")
	bob, bobToken := env.signUp(t, "bob")
	tagged := env.createRoom(t, alice, "Python Basics", "Python", "loops")
	untagged := env.createRoom(t, alice, "Off topic", "", "")
	env.do(t, http.MethodPost, "/room/"+itoa(tagged.ID), bobToken, PostMessageRequest{Body: "hi"})

	rr := env.do(t, http.MethodGet, "/api/rooms", "", nil)
	expectStatus(t, rr, http.StatusOK)
	rooms := decode[[]RoomResponse](t, rr)
	if len(rooms) != 2 {
		t.Fatalf("rooms = %d, want 2", len(rooms))
	}

	for _, path := range []string{"/api/rooms/", "/api/room/"} {
		rr := env.do(t, http.MethodGet, path+itoa(tagged.ID), "", nil)
		expectStatus(t, rr, http.StatusOK)

		got := decode[RoomResponse](t, rr)
		if got.Host == nil || *got.Host != alice.ID {
			t.Errorf("%s: host = %v, want %d", path, got.Host, alice.ID)
		}
		if got.Topic == nil || *got.Topic != *tagged.TopicID {
			t.Errorf("%s: topic = %v, want %d", path, got.Topic, *tagged.TopicID)
		}
		if diff := cmp.Diff([]uint{bob.ID}, got.Participants); diff != "" {
			t.Errorf("%s: participants mismatch (-want +got):\n%s", path, diff)
		}
	}

	rr = env.do(t, http.MethodGet, "/api/rooms/"+itoa(untagged.ID), "", nil)
	expectStatus(t, rr, http.StatusOK)
	if got := decode[RoomResponse](t, rr); got.Topic != nil || len(got.Participants) != 0 {
		t.Errorf("untagged room = %+v, want null topic and no participants", got)
	}

	rr = env.do(t, http.MethodGet, "/api/rooms/999", "", nil)
	expectStatus(t, rr, http.StatusNotFound)
}
