package entity

import (
	"fmt"
	"time"
)

// Vote is a user's current reaction on a post. A user has at most one vote
// per post; having no vote is represented by the absence of the record.
type Vote struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	PostID    string    `bson:"post_id" json:"post_id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	IsLike    bool      `bson:"is_like" json:"is_like"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// VoteState is the per (post, user) state of the toggle.
type VoteState int

const (
	VoteStateNone VoteState = iota
	VoteStateLiked
	VoteStateDisliked
)

func (s VoteState) String() string {
	switch s {
	case VoteStateNone:
		return "none"
	case VoteStateLiked:
		return "liked"
	case VoteStateDisliked:
		return "disliked"
	default:
		return fmt.Sprintf("VoteState(%d)", int(s))
	}
}

// VoteStateOf maps an existing record (or nil) to its state.
func VoteStateOf(v *Vote) VoteState {
	switch {
	case v == nil:
		return VoteStateNone
	case v.IsLike:
		return VoteStateLiked
	default:
		return VoteStateDisliked
	}
}

// VoteAction is the write needed on the vote record for a transition.
type VoteAction int

const (
	VoteActionCreate VoteAction = iota + 1
	VoteActionUpdate
	VoteActionDelete
)

func (a VoteAction) String() string {
	switch a {
	case VoteActionCreate:
		return "create"
	case VoteActionUpdate:
		return "update"
	case VoteActionDelete:
		return "delete"
	default:
		return fmt.Sprintf("VoteAction(%d)", int(a))
	}
}

// VoteTransition describes one step of the toggle: the record write and the
// counter deltas that keep the post in step with it.
type VoteTransition struct {
	From          VoteState
	To            VoteState
	Action        VoteAction
	LikesDelta    int
	DislikesDelta int
}

// NextVoteTransition computes the transition for a request. Submitting the
// vote the user already has retracts it.
func NextVoteTransition(current VoteState, isLike bool) VoteTransition {
	switch current {
	case VoteStateLiked:
		if isLike {
			return VoteTransition{From: current, To: VoteStateNone, Action: VoteActionDelete, LikesDelta: -1}
		}
		return VoteTransition{From: current, To: VoteStateDisliked, Action: VoteActionUpdate, LikesDelta: -1, DislikesDelta: 1}
	case VoteStateDisliked:
		if isLike {
			return VoteTransition{From: current, To: VoteStateLiked, Action: VoteActionUpdate, LikesDelta: 1, DislikesDelta: -1}
		}
		return VoteTransition{From: current, To: VoteStateNone, Action: VoteActionDelete, DislikesDelta: -1}
	default:
		if isLike {
			return VoteTransition{From: VoteStateNone, To: VoteStateLiked, Action: VoteActionCreate, LikesDelta: 1}
		}
		return VoteTransition{From: VoteStateNone, To: VoteStateDisliked, Action: VoteActionCreate, DislikesDelta: 1}
	}
}

// Inverse returns the counter deltas that undo t.
func (t VoteTransition) Inverse() (likes, dislikes int) {
	return -t.LikesDelta, -t.DislikesDelta
}

// VoteOutcome is what a toggle request produced.
type VoteOutcome struct {
	Status     ActionStatus
	Transition VoteTransition
	Likes      int
	Dislikes   int
}
