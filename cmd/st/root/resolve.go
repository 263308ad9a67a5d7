package root

import (
	"strings"

	"studytime/internal/engine"
	"studytime/internal/storage"
)

const shortIDLen = 8

func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

// resolveSubject accepts a full id, an id prefix or a case-insensitive name.
func resolveSubject(svc *engine.Service, ref string) (storage.Subject, error) {
	ref = strings.TrimSpace(ref)
	var match []storage.Subject
	for _, s := range svc.Subjects() {
		if s.ID == ref {
			return s, nil
		}
		if strings.EqualFold(s.Name, ref) || (len(ref) >= 4 && strings.HasPrefix(s.ID, ref)) {
			match = append(match, s)
		}
	}
	if len(match) != 1 {
		return storage.Subject{}, engine.NotFoundError{Kind: "subject", ID: ref}
	}
	return match[0], nil
}

// resolveTask accepts a full id or an unambiguous id prefix.
func resolveTask(svc *engine.Service, ref string) (storage.Task, error) {
	ref = strings.TrimSpace(ref)
	var match []storage.Task
	for _, t := range svc.Tasks() {
		if t.ID == ref {
			return t, nil
		}
		if len(ref) >= 4 && strings.HasPrefix(t.ID, ref) {
			match = append(match, t)
		}
	}
	if len(match) != 1 {
		return storage.Task{}, engine.NotFoundError{Kind: "task", ID: ref}
	}
	return match[0], nil
}
