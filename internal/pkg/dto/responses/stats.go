package responses

type GeneralStats struct {
	TotalPatients     int64 `json:"total_patients"`
	TotalEncounters   int64 `json:"total_encounters"`
	TotalObservations int64 `json:"total_observations"`
	TotalActiveUsers  int64 `json:"total_active_users"`
}
