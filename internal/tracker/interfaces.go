package tracker

import (
	"github.com/ytget/hobby-tracker/internal/model"
)

// SubscriptionID identifies a registered change listener.
type SubscriptionID uint64

// Listener receives a snapshot of the collection after every accepted mutation.
type Listener func([]model.Hobby)

// HobbyStore defines the interface for the hobby collection.
type HobbyStore interface {
	AddHobby(name, emoji string) (model.Hobby, error)
	RemoveHobby(index int) (model.Hobby, error)
	RemoveHobbies(indexes []int) ([]model.Hobby, error)

	Hobbies() []model.Hobby
	Hobby(index int) (model.Hobby, bool)
	Len() int
	Contains(name string) bool

	Subscribe(listener Listener) SubscriptionID
	Unsubscribe(id SubscriptionID)
}
