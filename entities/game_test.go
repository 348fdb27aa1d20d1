package entities

import (
	"encoding/json"
	"reflect"
	"testing"
)

func sampleGame() *Game {
	card := Card{
		Symbol: GemOnyx,
		Points: 1,
		Level:  1,
		Price:  Price{GemDiamond: 1, GemSapphire: 2},
	}
	deckCard := Card{
		Symbol: GemRuby,
		Points: 0,
		Level:  1,
		Price:  Price{GemEmerald: 2},
	}
	return &Game{
		ID:     "g-1",
		Status: GameStatusRunning,
		Players: []Player{
			{
				User:   User{ID: "1", Login: "player1", Name: "Player 1", AvatarURL: "http://localhost/a1.png"},
				Tokens: Price{GemRuby: 2},
				Cards:  []Card{card},
				Nobles: []Noble{{Points: 3, Requirements: Price{GemOnyx: 4}}},
			},
			{
				User:   User{ID: "2", Login: "player2", Name: "Player 2", AvatarURL: "http://localhost/a2.png"},
				Tokens: Price{},
				Cards:  []Card{},
				Nobles: []Noble{},
			},
		},
		Board: &Board{
			VisibleCards: map[int][]*Card{
				1: {&card, nil, nil, nil},
				2: {nil, nil, nil, nil},
				3: {nil, nil, nil, nil},
			},
			Decks: map[int][]Card{
				1: {deckCard},
				2: {},
				3: {},
			},
			Nobles: []Noble{{Points: 3, Requirements: Price{GemEmerald: 3, GemRuby: 3}}},
			Tokens: Price{GemEmerald: 4, GemDiamond: 4, GemSapphire: 4, GemOnyx: 4, GemRuby: 4},
			Turn:   "1",
		},
	}
}

// 持久化形状必须无损往返
func TestGameJSONRoundTrip(t *testing.T) {
	original := sampleGame()

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatal(err)
	}
	var restored Game
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(original, &restored) {
		t.Error("serialized game should round-trip losslessly")
	}
}

func TestGameCloneIsIndependent(t *testing.T) {
	original := sampleGame()
	cloned := original.Clone()

	if !reflect.DeepEqual(original, cloned) {
		t.Fatal("clone should equal the original")
	}

	cloned.Board.Tokens.Add(GemRuby, -1)
	cloned.Players[0].Tokens.Add(GemRuby, 5)
	cloned.Players[0].Cards = append(cloned.Players[0].Cards, Card{Symbol: GemRuby, Level: 1, Price: Price{}})
	cloned.Board.Decks[1] = cloned.Board.Decks[1][1:]
	*cloned.Board.VisibleCards[1][0] = Card{Symbol: GemEmerald, Level: 1, Price: Price{}}
	cloned.Board.Turn = "2"

	fresh := sampleGame()
	if !reflect.DeepEqual(original, fresh) {
		t.Error("mutating the clone must not touch the original")
	}
}

func TestPriceMissingKeyIsZero(t *testing.T) {
	a := Price{GemRuby: 1, GemOnyx: 0}
	b := Price{GemRuby: 1}
	if !a.Equals(b) {
		t.Error("missing keys should compare equal to explicit zeros")
	}
	if a.Get(GemDiamond) != 0 {
		t.Error("missing key should read as 0")
	}
}

func TestCardEqualsIsStructural(t *testing.T) {
	a := Card{Symbol: GemOnyx, Points: 0, Level: 1, Price: Price{GemDiamond: 1}}
	b := Card{Symbol: GemOnyx, Points: 0, Level: 1, Price: Price{GemDiamond: 1, GemRuby: 0}}
	c := Card{Symbol: GemOnyx, Points: 0, Level: 2, Price: Price{GemDiamond: 1}}

	if !a.Equals(b) {
		t.Error("cards with the same content should be equal")
	}
	if a.Equals(c) {
		t.Error("cards with different levels should not be equal")
	}
}
