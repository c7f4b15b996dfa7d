package dto

import "taskboard/model"

type UserAnalyticsResponse struct {
	UserID    string          `json:"userId"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Analytics model.Analytics `json:"analytics"`
}
