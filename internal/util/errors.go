package util

import "errors"

var (
	ErrAnimalNotFound = errors.New("Animal not found")
	ErrLessonNotFound = errors.New("Lesson not found")
	ErrQuizNotFound   = errors.New("Quiz not found")
	ErrEmptyAnswerKey = errors.New("Quiz has no answer key")
)
