package inventory

import (
	"time"

	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/domain/inventory"
)

func toAssetResponse(a *entity.Asset, now time.Time) *dto.AssetResponse {
	if a == nil {
		return nil
	}
	return &dto.AssetResponse{
		ID:                 a.ID,
		AssetTag:           a.AssetTag,
		Name:               a.Name,
		CategoryID:         a.CategoryID,
		SubcategoryID:      a.SubcategoryID,
		SerialNumber:       a.SerialNumber,
		PurchaseDate:       dto.FormatDate(a.PurchaseDate),
		AcqCost:            a.AcqCost,
		EstimateLifeMonths: a.EstimateLifeMonths,
		VendorID:           a.VendorID,
		StatusID:           a.StatusID,
		CustodianID:        a.CustodianID,
		BranchID:           a.BranchID,
		EquipmentID:        a.EquipmentID,
		Location:           a.Location,
		Remarks:            a.Remarks,
		WarrantyExpiration: dto.FormatDate(a.WarrantyExpiration),
		BookValue:          inventory.BookValue(a.AcqCost, a.PurchaseDate, a.EstimateLifeMonths, now),
		Version:            a.Version,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

func toMovementResponse(m *entity.AssetMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:              m.ID,
		BatchID:         m.BatchID,
		AssetID:         m.AssetID,
		Type:            m.Type,
		FromCustodianID: m.FromCustodianID,
		ToCustodianID:   m.ToCustodianID,
		FromBranchID:    m.FromBranchID,
		ToBranchID:      m.ToBranchID,
		FromStatusID:    m.FromStatusID,
		ToStatusID:      m.ToStatusID,
		Reason:          m.Reason,
		Remarks:         m.Remarks,
		ActorID:         m.ActorID,
		CreatedAt:       m.CreatedAt,
	}
}

func toRepairResponse(r *entity.Repair) *dto.RepairResponse {
	if r == nil {
		return nil
	}
	return &dto.RepairResponse{
		ID:                 r.ID,
		AssetID:            r.AssetID,
		VendorID:           r.VendorID,
		Description:        r.Description,
		RepairDate:         r.RepairDate.Format(dto.DateLayout),
		ExpectedReturnDate: dto.FormatDate(r.ExpectedReturnDate),
		ActualReturnDate:   dto.FormatDate(r.ActualReturnDate),
		Cost:               r.Cost,
		Status:             r.Status,
		Remarks:            r.Remarks,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}
