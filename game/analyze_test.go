package game

import (
	"testing"

	"go-splendor/entities"
)

func pointsCard(points int) entities.Card {
	return entities.Card{Symbol: entities.GemRuby, Points: points, Level: 3, Price: entities.Price{}}
}

func TestPlayerPoints(t *testing.T) {
	player := entities.Player{
		Cards: []entities.Card{pointsCard(2), pointsCard(5)},
		Nobles: []entities.Noble{
			{Points: 3, Requirements: entities.Price{}},
		},
	}
	if got := PlayerPoints(player); got != 10 {
		t.Errorf("PlayerPoints = %d, want 10", got)
	}
}

func TestAnalyzeLobby(t *testing.T) {
	lobby := &entities.Game{ID: "l", Status: entities.GameStatusLobby}
	state := Analyze(lobby)
	if state.State != StateInProgress {
		t.Errorf("state = %s, want in_progress", state.State)
	}
}

func TestAnalyzeMidRoundNeverEnds(t *testing.T) {
	g := runningGame()
	// 有人过线，但回合还没回到首位玩家，本轮要打完
	g.Players[1].Cards = []entities.Card{pointsCard(16)}
	g.Board.Turn = "3"

	state := Analyze(g)

	if state.State != StateInProgress {
		t.Errorf("state = %s, want in_progress", state.State)
	}
	if state.Turn != "3" {
		t.Errorf("turn = %s, want 3", state.Turn)
	}
}

func TestAnalyzeRoundBoundaryBelowThreshold(t *testing.T) {
	g := runningGame()
	g.Players[1].Cards = []entities.Card{pointsCard(14)}

	state := Analyze(g)

	if state.State != StateInProgress {
		t.Errorf("state = %s, want in_progress", state.State)
	}
}

func TestAnalyzeEndedLeaderboard(t *testing.T) {
	g := runningGame()
	g.Players[0].Cards = []entities.Card{pointsCard(3)}
	g.Players[1].Cards = []entities.Card{pointsCard(16)}
	g.Players[2].Cards = []entities.Card{pointsCard(12)}
	g.Players[2].Nobles = []entities.Noble{{Points: 3, Requirements: entities.Price{}}}

	state := Analyze(g)

	if state.State != StateEnded {
		t.Fatalf("state = %s, want ended", state.State)
	}
	expected := Leaderboard{
		{Player: "2", Score: 16},
		{Player: "3", Score: 15},
		{Player: "1", Score: 3},
		{Player: "4", Score: 0},
	}
	if len(state.Leaderboard) != len(expected) {
		t.Fatalf("leaderboard size = %d, want %d", len(state.Leaderboard), len(expected))
	}
	for i, entry := range expected {
		if state.Leaderboard[i] != entry {
			t.Errorf("leaderboard[%d] = %+v, want %+v", i, state.Leaderboard[i], entry)
		}
	}
}

func TestAnalyzeTiesKeepSeatingOrder(t *testing.T) {
	g := runningGame()
	g.Players[0].Cards = []entities.Card{pointsCard(15)}
	g.Players[2].Cards = []entities.Card{pointsCard(15)}

	state := Analyze(g)

	if state.State != StateEnded {
		t.Fatalf("state = %s, want ended", state.State)
	}
	if state.Leaderboard[0].Player != "1" || state.Leaderboard[1].Player != "3" {
		t.Errorf("tied players should keep seating order, got %+v", state.Leaderboard)
	}
}
