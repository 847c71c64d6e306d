package entity

import (
	"snake-arcade/game/types"
)

// Snake is stored head-first: Body[0] is the head.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: dir,
	}
}

// NewSnakeFromBody builds a snake from an explicit head-first body
func NewSnakeFromBody(body []types.Point, dir types.Direction) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{Body: b, Direction: dir}
}

// Move prepends newHead
func (s *Snake) Move(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

// NextHead returns the unwrapped cell the head moves into this tick
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction.Delta())
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Segments returns a copy of the body
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
