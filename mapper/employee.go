package mapper

import (
	"time"
)

// Employee and its DTO use different field names on purpose; the
// mapping makes the renames explicit in both directions.
type Employee struct {
	ID   int
	Name string
}

type EmployeeDTO struct {
	EmployeeID   int    `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
}

func EmployeeToDTO(entity Employee) EmployeeDTO {
	return EmployeeDTO{
		EmployeeID:   entity.ID,
		EmployeeName: entity.Name,
	}
}

func EmployeeFromDTO(dto EmployeeDTO) Employee {
	return Employee{
		ID:   dto.EmployeeID,
		Name: dto.EmployeeName,
	}
}

const employeeDateLayout = "02-01-2006 15:04:05"

type EmployeeWithDate struct {
	ID   int
	Name string
	Date time.Time
}

type EmployeeWithDateDTO struct {
	EmployeeID   int    `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	Date         string `json:"date"`
}

func EmployeeWithDateToDTO(entity EmployeeWithDate) EmployeeWithDateDTO {
	dto := EmployeeWithDateDTO{
		EmployeeID:   entity.ID,
		EmployeeName: entity.Name,
	}
	if !entity.Date.IsZero() {
		dto.Date = entity.Date.Format(employeeDateLayout)
	}
	return dto
}

func EmployeeWithDateFromDTO(dto EmployeeWithDateDTO) EmployeeWithDate {
	entity := EmployeeWithDate{
		ID:   dto.EmployeeID,
		Name: dto.EmployeeName,
	}
	if t, err := time.Parse(employeeDateLayout, dto.Date); err == nil {
		entity.Date = t
	}
	return entity
}
