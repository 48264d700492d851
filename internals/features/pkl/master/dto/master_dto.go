// file: internals/features/pkl/master/dto/master_dto.go
package dto

/* ===================== REQUESTS ===================== */

type MasterCreateReq struct {
	Nama string `json:"nama" validate:"required"`
}

// Payload import Excel: array {nama}, create-if-absent
type MasterBulkReq struct {
	Data []MasterCreateReq `json:"data" validate:"required,min=1,dive"`
}
