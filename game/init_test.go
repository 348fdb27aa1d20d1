package game

import (
	"testing"

	"golang.org/x/exp/rand"

	"go-splendor/entities"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func testUsers(n int) []entities.User {
	users := make([]entities.User, n)
	for i := range users {
		id := string(rune('1' + i))
		users[i] = entities.User{
			ID:        id,
			Login:     "player" + id,
			Name:      "Player " + id,
			AvatarURL: "http://localhost/avatars/player" + id + ".png",
		}
	}
	return users
}

func TestPrepareTokens(t *testing.T) {
	testCases := []struct {
		numberOfPlayers int
		expected        int
	}{
		{numberOfPlayers: 2, expected: 4},
		{numberOfPlayers: 3, expected: 5},
		{numberOfPlayers: 4, expected: 7},
	}
	for _, tc := range testCases {
		tokens, err := PrepareTokens(tc.numberOfPlayers)
		if err != nil {
			t.Fatalf("PrepareTokens(%d): %v", tc.numberOfPlayers, err)
		}
		for _, gem := range entities.AllGemStones {
			if got := tokens.Get(gem); got != tc.expected {
				t.Errorf("PrepareTokens(%d)[%s] = %d, want %d", tc.numberOfPlayers, gem, got, tc.expected)
			}
		}
	}
}

func TestPrepareTokensInvalidPlayerCount(t *testing.T) {
	for _, n := range []int{0, 1, 5, -1} {
		if _, err := PrepareTokens(n); err == nil {
			t.Errorf("PrepareTokens(%d) should fail", n)
		}
	}
}

func TestInitializeGameInvalidPlayerCount(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		if _, err := InitializeGame(testUsers(n), testRng()); err == nil {
			t.Errorf("InitializeGame with %d players should fail", n)
		}
	}
}

func TestInitializeGame(t *testing.T) {
	users := testUsers(4)

	g, err := InitializeGame(users, testRng())
	if err != nil {
		t.Fatal(err)
	}

	if g.ID == "" {
		t.Error("game should get an id")
	}
	if g.Status != entities.GameStatusRunning {
		t.Errorf("status = %s, want running", g.Status)
	}
	if len(g.Players) != 4 {
		t.Fatalf("players = %d, want 4", len(g.Players))
	}
	if g.Board == nil {
		t.Fatal("board should be populated")
	}
	if g.Board.Turn != g.Players[0].User.ID {
		t.Errorf("turn = %s, want first seated player %s", g.Board.Turn, g.Players[0].User.ID)
	}

	// 开局持有全部清空
	for _, player := range g.Players {
		if len(player.Cards) != 0 || len(player.Nobles) != 0 {
			t.Errorf("player %s should start empty", player.User.ID)
		}
		for _, gem := range entities.AllGemStones {
			if player.Tokens.Get(gem) != 0 {
				t.Errorf("player %s should start without tokens", player.User.ID)
			}
		}
	}

	// 每个等级固定 4 个槽位，发出的卡从牌堆里移除
	for _, level := range entities.CardLevels {
		slots := g.Board.VisibleCards[level]
		if len(slots) != entities.VisibleSlots {
			t.Fatalf("level %d slots = %d, want %d", level, len(slots), entities.VisibleSlots)
		}
		dealt := 0
		for _, card := range slots {
			if card != nil {
				dealt++
				if card.Level != level {
					t.Errorf("level %d slot holds a level %d card", level, card.Level)
				}
			}
		}
		for _, card := range g.Board.Decks[level] {
			if card.Level != level {
				t.Errorf("level %d deck holds a level %d card", level, card.Level)
			}
		}
	}

	// 贵族 = 玩家数 + 1
	if len(g.Board.Nobles) != 5 {
		t.Errorf("nobles = %d, want 5", len(g.Board.Nobles))
	}

	// 四人局每色 7 个宝石
	for _, gem := range entities.AllGemStones {
		if got := g.Board.Tokens.Get(gem); got != 7 {
			t.Errorf("bank[%s] = %d, want 7", gem, got)
		}
	}

	// 座位是给定用户的一个排列
	seated := map[string]bool{}
	for _, player := range g.Players {
		seated[player.User.ID] = true
	}
	for _, user := range users {
		if !seated[user.ID] {
			t.Errorf("user %s missing from seating", user.ID)
		}
	}
}

func TestStartLobbyKeepsID(t *testing.T) {
	users := testUsers(3)
	lobby := &entities.Game{ID: "lobby-1", Status: entities.GameStatusLobby}
	for _, user := range users {
		lobby.Players = append(lobby.Players, entities.Player{User: user, Tokens: entities.Price{}})
	}

	started, err := StartLobby(lobby, testRng())
	if err != nil {
		t.Fatal(err)
	}
	if started.ID != "lobby-1" {
		t.Errorf("id = %s, want lobby-1", started.ID)
	}
	if started.Status != entities.GameStatusRunning {
		t.Errorf("status = %s, want running", started.Status)
	}
	if len(started.Players) != 3 {
		t.Errorf("players = %d, want 3", len(started.Players))
	}
}
