package ptr

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type pointerSuite struct {
	suite.Suite
}

func (s *pointerSuite) TestPointer() {
	p1 := String(`alice.host`)
	p2 := Int(10)
	p3 := Int64(891011)
	p4 := Bool(true)

	s.Equal(*p1, `alice.host`)
	s.Equal(*p2, int(10))
	s.Equal(*p3, int64(891011))
	s.Equal(*p4, true)
}

func TestPointerSuite(t *testing.T) {
	suite.Run(t, new(pointerSuite))
}
