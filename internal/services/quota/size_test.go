package quota

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"

	"github.com/selebrow/dbquota/mocks"
)

func TestEngineSizeInspector_SizeOf(t *testing.T) {
	g := NewWithT(t)
	e := new(mocks.Engine)
	e.EXPECT().SchemaSize(mock.Anything, "d1").Return(int64(2048), nil).Once()
	e.EXPECT().SchemaSize(mock.Anything, "empty").Return(int64(0), nil).Once()

	s := NewEngineSizeInspector(e)

	got, err := s.SizeOf(context.TODO(), "d1")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got).To(Equal(int64(2048)))

	got, err = s.SizeOf(context.TODO(), "empty")
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got).To(BeZero())

	e.AssertExpectations(t)
}

func TestEngineSizeInspector_SizeOfAll(t *testing.T) {
	g := NewWithT(t)
	e := new(mocks.Engine)
	e.EXPECT().ListDatabases(mock.Anything).Return([]string{"mysql", "d1", "d2", "empty"}, nil).Once()
	e.EXPECT().SchemaSizes(mock.Anything).Return(map[string]int64{
		"mysql":              1000,
		"d1":                 10,
		"d2":                 20,
		"information_schema": 5,
	}, nil).Once()
	e.EXPECT().Release().Once()

	s := NewEngineSizeInspector(e)

	got, err := s.SizeOfAll(context.TODO())
	g.Expect(err).ToNot(HaveOccurred())
	g.Expect(got).To(Equal(map[string]int64{
		"mysql": 1000,
		"d1":    10,
		"d2":    20,
		"empty": 0,
	}))

	e.AssertExpectations(t)
}

func TestEngineSizeInspector_SizeOfAll_Error(t *testing.T) {
	g := NewWithT(t)

	e := new(mocks.Engine)
	e.EXPECT().ListDatabases(mock.Anything).Return(nil, errors.New("list failed")).Once()
	e.EXPECT().Release().Once()
	s := NewEngineSizeInspector(e)
	_, err := s.SizeOfAll(context.TODO())
	g.Expect(err).To(MatchError("list failed"))
	e.AssertExpectations(t)

	e = new(mocks.Engine)
	e.EXPECT().ListDatabases(mock.Anything).Return([]string{"d1"}, nil).Once()
	e.EXPECT().SchemaSizes(mock.Anything).Return(nil, errors.New("aggregate failed")).Once()
	e.EXPECT().Release().Once()
	s = NewEngineSizeInspector(e)
	_, err = s.SizeOfAll(context.TODO())
	g.Expect(err).To(MatchError("aggregate failed"))
	e.AssertExpectations(t)
}
