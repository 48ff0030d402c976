package usecase

import "time"

func (uc *WarehouseReleaseUseCase) SetNow(now func() time.Time) { uc.now = now }
func (uc *CustomerReturnUseCase) SetNow(now func() time.Time)   { uc.now = now }
func (uc *ProductionUseCase) SetNow(now func() time.Time)       { uc.now = now }
