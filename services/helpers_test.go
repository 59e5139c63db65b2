package services

import (
	"fmt"

	"github.com/vacinalettipaolo93-sudo/Gestionale-tornei-sub000/models"
)

type counterIDs struct {
	n int
}

func (c *counterIDs) NewID() string {
	c.n++
	return fmt.Sprintf("id%d", c.n)
}

func seqIDs() models.IDGenerator {
	return &counterIDs{}
}
