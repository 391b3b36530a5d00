package quota

import (
	"context"

	"github.com/selebrow/dbquota/pkg/engine"
)

type EngineSizeInspector struct {
	e engine.Engine
}

func NewEngineSizeInspector(e engine.Engine) *EngineSizeInspector {
	return &EngineSizeInspector{e: e}
}

// SizeOf returns data plus index length of all tables in db, 0 for unknown or empty databases.
func (s *EngineSizeInspector) SizeOf(ctx context.Context, db string) (int64, error) {
	return s.e.SchemaSize(ctx, db)
}

// SizeOfAll measures every database known to engine. Aggregate query omits schemas without tables,
// so database list is fetched separately and missing entries default to 0.
// It is a one-off snapshot, engine session is released once it is taken.
func (s *EngineSizeInspector) SizeOfAll(ctx context.Context) (map[string]int64, error) {
	defer s.e.Release()

	dbs, err := s.e.ListDatabases(ctx)
	if err != nil {
		return nil, err
	}
	sizes, err := s.e.SchemaSizes(ctx)
	if err != nil {
		return nil, err
	}

	res := make(map[string]int64, len(dbs))
	for _, db := range dbs {
		res[db] = sizes[db]
	}
	return res, nil
}
