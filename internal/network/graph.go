// Package network answers "key connector" and "data scientists you may know"
// questions over a small friendship graph.
package network

import (
	"fmt"
	"sort"

	"DataSci/internal/text"
	"DataSci/internal/types"
)

// Graph is an undirected friendship graph. Friend lists keep the order in
// which friendships were added.
type Graph struct {
	users   []types.User
	byID    map[int]types.User
	friends map[int][]int
}

// Degree is a user id and its number of friends.
type Degree struct {
	ID    int `json:"id"`
	Count int `json:"count"`
}

// NewGraph builds the adjacency lists for users from friendships.
func NewGraph(users []types.User, friendships []types.Friendship) (*Graph, error) {
	g := &Graph{
		users:   make([]types.User, len(users)),
		byID:    make(map[int]types.User, len(users)),
		friends: make(map[int][]int, len(users)),
	}
	copy(g.users, users)

	for _, u := range users {
		if _, dup := g.byID[u.ID]; dup {
			return nil, fmt.Errorf("duplicate user id %d", u.ID)
		}
		g.byID[u.ID] = u
		g.friends[u.ID] = []int{}
	}

	for _, f := range friendships {
		if _, ok := g.byID[f.A]; !ok {
			return nil, fmt.Errorf("friendship (%d, %d): unknown user %d", f.A, f.B, f.A)
		}
		if _, ok := g.byID[f.B]; !ok {
			return nil, fmt.Errorf("friendship (%d, %d): unknown user %d", f.A, f.B, f.B)
		}
		g.friends[f.A] = append(g.friends[f.A], f.B)
		g.friends[f.B] = append(g.friends[f.B], f.A)
	}

	return g, nil
}

func (g *Graph) Users() []types.User {
	out := make([]types.User, len(g.users))
	copy(out, g.users)
	return out
}

func (g *Graph) User(id int) (types.User, bool) {
	u, ok := g.byID[id]
	return u, ok
}

// FriendIDs returns the ids of the user's friends.
func (g *Graph) FriendIDs(id int) []int {
	out := make([]int, len(g.friends[id]))
	copy(out, g.friends[id])
	return out
}

func (g *Graph) NumberOfFriends(id int) int {
	return len(g.friends[id])
}

// TotalConnections sums every user's friend count, so each friendship is counted twice.
func (g *Graph) TotalConnections() int {
	total := 0
	for _, u := range g.users {
		total += g.NumberOfFriends(u.ID)
	}
	return total
}

func (g *Graph) AverageConnections() float64 {
	if len(g.users) == 0 {
		return 0
	}
	return float64(g.TotalConnections()) / float64(len(g.users))
}

// NumFriendsByID returns degree centrality, most connected first. Ties keep user order.
func (g *Graph) NumFriendsByID() []Degree {
	out := make([]Degree, 0, len(g.users))
	for _, u := range g.users {
		out = append(out, Degree{ID: u.ID, Count: g.NumberOfFriends(u.ID)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// FriendsOfFriendIDsBad lists every friend of every friend, including the
// user and the user's own friends.
func (g *Graph) FriendsOfFriendIDsBad(id int) []int {
	var out []int
	for _, friend := range g.friends[id] {
		out = append(out, g.friends[friend]...)
	}
	return out
}

func (g *Graph) areFriends(a, b int) bool {
	for _, f := range g.friends[a] {
		if f == b {
			return true
		}
	}
	return false
}

// FriendsOfFriendIDs counts mutual friends with everyone who is neither the
// user nor already a friend.
func (g *Graph) FriendsOfFriendIDs(id int) *text.Counter[int] {
	c := text.NewCounter[int]()
	for _, friend := range g.friends[id] {
		for _, foaf := range g.friends[friend] {
			if foaf == id || g.areFriends(id, foaf) {
				continue
			}
			c.Add(foaf, 1)
		}
	}
	return c
}
