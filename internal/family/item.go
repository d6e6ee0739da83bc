package family

import (
	"fmt"

	"github.com/N3moAhead/household/internal/person"
)

type Role int

const (
	RoleSpouse Role = iota
	RoleChild
)

// Wrapper for a member to be used in bubbles/list
type MemberItem struct {
	Member *person.Person
	Role   Role
}

// Items lists the members in order; the first two are the founding spouses.
func (f *Family) Items() []MemberItem {
	items := make([]MemberItem, len(f.members))
	for i, m := range f.members {
		role := RoleChild
		if i < 2 {
			role = RoleSpouse
		}
		items[i] = MemberItem{Member: m, Role: role}
	}
	return items
}

func (r MemberItem) Title() string {
	icon := "🟢"
	if r.Role == RoleSpouse {
		icon = "🔴"
		if r.Member.Spouse() == nil {
			// linkage failed the age gate
			icon = "⚪"
		}
	}
	return fmt.Sprintf("%s %s (%d)", icon, r.Member.FullName(), r.Member.Age)
}
func (r MemberItem) Description() string { return r.Member.String() }
func (r MemberItem) FilterValue() string { return r.Member.FullName() }
