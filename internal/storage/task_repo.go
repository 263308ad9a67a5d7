package storage

import "context"

const KeyTasks = "tasks"

type TaskRepo struct {
	kv *KV
}

func NewTaskRepo(kv *KV) *TaskRepo {
	return &TaskRepo{kv: kv}
}

func (r *TaskRepo) ListAll(ctx context.Context) []Task {
	return Get(ctx, r.kv, KeyTasks, []Task{})
}

func (r *TaskRepo) SaveAll(ctx context.Context, tasks []Task) {
	Set(ctx, r.kv, KeyTasks, nonNil(tasks))
}
