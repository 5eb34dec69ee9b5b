package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// MaxInListSize is the largest number of values Oracle accepts in one IN list.
const MaxInListSize = 1000

// UniqueIDs returns ids without duplicates, keeping first-seen order.
func UniqueIDs(ids []uint32) []uint32 {
	seen := make(map[uint32]struct{}, len(ids))
	unique := make([]uint32, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

// ChunkIDs splits ids into consecutive slices of at most size elements.
func ChunkIDs(ids []uint32, size int) [][]uint32 {
	if size <= 0 {
		size = MaxInListSize
	}
	chunks := make([][]uint32, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}

// FindIn loads the rows of T whose column matches one of ids. Duplicates are
// queried once and the lookup is split so no IN list exceeds MaxInListSize.
// orderBy applies within each chunk.
//
// Usage:
//
//	members, err := database.FindIn[model.Member](ctx, db, "id", memberIDs)
func FindIn[T any](ctx context.Context, db *gorm.DB, column string, ids []uint32, orderBy ...string) ([]T, error) {
	var rows []T
	for _, chunk := range ChunkIDs(UniqueIDs(ids), MaxInListSize) {
		query := db.WithContext(ctx).Where(fmt.Sprintf("%s IN ?", column), chunk)
		for _, o := range orderBy {
			query = query.Order(o)
		}

		var batch []T
		if err := query.Find(&batch).Error; err != nil {
			return nil, err
		}
		rows = append(rows, batch...)
	}
	return rows, nil
}
