package editor

import (
	"strings"

	"github.com/google/uuid"

	"github.com/youqu117/Bookkeeping/internal/domain"
)

// DefaultPalette is the fixed color choice offered by the new-tag sub-mode.
var DefaultPalette = []string{
	"red", "orange", "yellow", "green", "teal", "blue", "purple", "pink",
}

// VisibleTags lists the tags offered for the current transaction type.
// Transfers carry no category, so the list is empty while composing one.
func (e *Editor) VisibleTags() []domain.Tag {
	if e.draft.Type == domain.TypeTransfer {
		return nil
	}
	out := make([]domain.Tag, 0, len(e.tags))
	for _, g := range e.tags {
		if g.AppliesTo(e.draft.Type) {
			out = append(out, g)
		}
	}
	return out
}

// ExpandedTag returns the ID of the tag whose sub-tag panel is open, or ""
// when no panel is open.
func (e *Editor) ExpandedTag() string {
	return e.expandedTagID
}

// Selected reports whether the tag is currently selected.
func (e *Editor) Selected(tagID string) bool {
	for _, id := range e.draft.TagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}

// SubTag returns the sub-tag chosen under the given tag, or "".
func (e *Editor) SubTag(tagID string) string {
	return e.draft.SubTags[tagID]
}

// ToggleTag handles a click on a tag chip:
//   - unselected tag: select it; its panel opens if it has sub-tags,
//     otherwise any open panel closes
//   - selected tag with sub-tags: toggle its panel without changing selection
//   - selected tag without sub-tags: deselect it
func (e *Editor) ToggleTag(tagID string) {
	g, ok := e.findTag(tagID)
	if !ok {
		return
	}

	if !e.Selected(tagID) {
		e.draft.TagIDs = append(e.draft.TagIDs, tagID)
		if len(g.SubTags) > 0 {
			e.expandedTagID = tagID
		} else {
			e.expandedTagID = ""
		}
		return
	}

	if len(g.SubTags) > 0 {
		if e.expandedTagID == tagID {
			e.expandedTagID = ""
		} else {
			e.expandedTagID = tagID
		}
		return
	}

	e.deselectTag(tagID)
}

// SelectSubTag toggles a sub-tag under a selected tag: picking the same name
// again clears the entry, picking a different name replaces it. At most one
// sub-tag is active per tag.
func (e *Editor) SelectSubTag(tagID, name string) {
	if !e.Selected(tagID) {
		return
	}
	g, ok := e.findTag(tagID)
	if !ok || !g.HasSubTag(name) {
		return
	}

	if e.draft.SubTags[tagID] == name {
		delete(e.draft.SubTags, tagID)
		return
	}
	e.draft.SubTags[tagID] = name
}

// ClearTag is the explicit "clear" action: it deselects the tag, closes its
// panel if open, and drops its sub-tag entry.
func (e *Editor) ClearTag(tagID string) {
	e.deselectTag(tagID)
}

// DeleteTag removes a tag from the available collection entirely, clearing
// it from the draft first, and notifies the host.
func (e *Editor) DeleteTag(tagID string) {
	e.deselectTag(tagID)
	for i, g := range e.tags {
		if g.ID == tagID {
			e.tags = append(e.tags[:i], e.tags[i+1:]...)
			break
		}
	}
	if e.callbacks.OnDeleteTag != nil {
		e.callbacks.OnDeleteTag(tagID)
	}
}

func (e *Editor) deselectTag(tagID string) {
	for i, id := range e.draft.TagIDs {
		if id == tagID {
			e.draft.TagIDs = append(e.draft.TagIDs[:i], e.draft.TagIDs[i+1:]...)
			break
		}
	}
	delete(e.draft.SubTags, tagID)
	if e.expandedTagID == tagID {
		e.expandedTagID = ""
	}
}

// newTagDraft is the in-panel sub-mode state for creating a tag.
type newTagDraft struct {
	name  string
	color string
}

// BeginNewTag opens the new-tag sub-mode with the first palette color
// preselected.
func (e *Editor) BeginNewTag() {
	e.newTag = &newTagDraft{color: DefaultPalette[0]}
}

// CancelNewTag leaves the sub-mode without creating anything.
func (e *Editor) CancelNewTag() {
	e.newTag = nil
}

// CreatingTag reports whether the new-tag sub-mode is active.
func (e *Editor) CreatingTag() bool {
	return e.newTag != nil
}

// SetNewTagName sets the pending tag name.
func (e *Editor) SetNewTagName(name string) {
	if e.newTag != nil {
		e.newTag.name = name
	}
}

// SetNewTagColor picks a palette color. Unknown colors are ignored.
func (e *Editor) SetNewTagColor(color string) {
	if e.newTag == nil {
		return
	}
	for _, c := range DefaultPalette {
		if c == color {
			e.newTag.color = c
			return
		}
	}
}

// ConfirmNewTag creates the tag: a fresh UUID, applicability defaulting to
// the current transaction type (or "both" while composing a transfer), no
// sub-tags. The tag is handed to the host via OnAddTag and immediately
// selected.
func (e *Editor) ConfirmNewTag() (domain.Tag, error) {
	if e.newTag == nil {
		return domain.Tag{}, ErrNoNewTag
	}
	name := strings.TrimSpace(e.newTag.name)
	if name == "" {
		return domain.Tag{}, ErrEmptyTagName
	}

	tagType := domain.TagType(e.draft.Type)
	if e.draft.Type == domain.TypeTransfer {
		tagType = domain.TagBoth
	}

	g := domain.Tag{
		ID:    uuid.NewString(),
		Name:  name,
		Color: e.newTag.color,
		Type:  tagType,
	}

	e.tags = append(e.tags, g)
	if e.callbacks.OnAddTag != nil {
		e.callbacks.OnAddTag(g)
	}

	e.newTag = nil
	e.ToggleTag(g.ID)
	return g, nil
}
