package domain

import "fmt"

type AirplaneType struct {
	ID   int64
	Name string
}

func (t AirplaneType) String() string { return t.Name }

type AirplaneTypeInput struct {
	Name *string `json:"name" validate:"required,max=255"`
}

type Airplane struct {
	ID             int64
	Name           string
	Rows           int
	SeatsInRow     int
	AirplaneTypeID int64
	AirplaneType   *AirplaneType
}

func (a Airplane) String() string {
	typeName := ""
	if a.AirplaneType != nil {
		typeName = a.AirplaneType.Name
	}
	return fmt.Sprintf("name - %s, rows - %d, seats - %d, type - %s", a.Name, a.Rows, a.SeatsInRow, typeName)
}

type AirplaneInput struct {
	Name         *string `json:"name" validate:"required,max=255"`
	Rows         *int    `json:"rows" validate:"required"`
	SeatsInRow   *int    `json:"seats_in_row" validate:"required"`
	AirplaneType *int64  `json:"airplane_type" validate:"required"`
}
