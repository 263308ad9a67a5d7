package storage

import "context"

const KeySubjects = "subjects"

type SubjectRepo struct {
	kv *KV
}

func NewSubjectRepo(kv *KV) *SubjectRepo {
	return &SubjectRepo{kv: kv}
}

func (r *SubjectRepo) ListAll(ctx context.Context) []Subject {
	return Get(ctx, r.kv, KeySubjects, []Subject{})
}

func (r *SubjectRepo) SaveAll(ctx context.Context, subjects []Subject) {
	Set(ctx, r.kv, KeySubjects, nonNil(subjects))
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
