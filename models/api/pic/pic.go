package picapimodels

import (
	"time"

	"pic-tools-backend/errs"
	"pic-tools-backend/lib/utils/helpers"
	"pic-tools-backend/models"
	apimodels "pic-tools-backend/models/api"
	dbmodels "pic-tools-backend/models/db"
)

type ProcedureStepData struct {
	Step        string `json:"step"`
	Responsible string `json:"responsible"`
	Date        string `json:"date"` // формат 2006-01-02
}

func (p ProcedureStepData) Validate() error {
	if p.Step == "" {
		return errs.NewValidation("не указано описание шага процедуры")
	}
	if p.Responsible == "" {
		return errs.NewValidation("не указан ответственный за шаг процедуры")
	}
	if _, err := helpers.ParseDate(p.Date); err != nil {
		return errs.NewValidation("некорректная дата шага процедуры")
	}
	return nil
}

type DocumentData struct {
	DocumentType string `json:"document_type"`
	Responsible  string `json:"responsible"`
	Date         string `json:"date"`
}

func (d DocumentData) Validate() error {
	if d.DocumentType == "" {
		return errs.NewValidation("не указан тип документа")
	}
	if d.Responsible == "" {
		return errs.NewValidation("не указан ответственный за документ")
	}
	if _, err := helpers.ParseDate(d.Date); err != nil {
		return errs.NewValidation("некорректная дата документа")
	}
	return nil
}

type ValidationData struct {
	Description string `json:"description"`
	Responsible string `json:"responsible"`
	Date        string `json:"date"`
}

func (v ValidationData) Validate() error {
	if v.Description == "" {
		return errs.NewValidation("не указано описание валидации")
	}
	if v.Responsible == "" {
		return errs.NewValidation("не указан ответственный за валидацию")
	}
	if _, err := helpers.ParseDate(v.Date); err != nil {
		return errs.NewValidation("некорректная дата валидации")
	}
	return nil
}

type AvailabilityData struct {
	Fixtures      bool   `json:"fixtures"`
	TestEquipment bool   `json:"test_equipment"`
	Other         string `json:"other"`
}

type ChangeReasonData struct {
	Safety       bool   `json:"safety"`
	Delivery     bool   `json:"delivery"`
	Productivity bool   `json:"productivity"`
	Quality      bool   `json:"quality"`
	Cost         bool   `json:"cost"`
	Process      bool   `json:"process"`
	Other        string `json:"other"`
}

type PicData struct {
	AffectedAreaID     string                  `json:"affected_area_id"`    // ид области (может быть не выбрана)
	Platform           string                  `json:"platform"`            // платформа
	PartNumbersScope   models.PartNumbersScope `json:"part_numbers_scope"`  // охват номеров деталей
	PartNumbersText    string                  `json:"part_numbers_text"`   // перечень номеров при scope=listed
	ChangeDuration     models.ChangeDuration   `json:"change_duration"`     // временное/постоянное изменение
	TemporaryType      string                  `json:"temporary_type"`      // тип временного изменения
	PiecesTimeDate     string                  `json:"pieces_time_date"`    // кол-во штук/время/дата
	OriginationDate    string                  `json:"origination_date"`    // дата создания изменения
	ImplementationDate string                  `json:"implementation_date"` // дата внедрения
	AffectedOperations string                  `json:"affected_operations"` // затронутые операции
	RevisionReason     string                  `json:"revision_reason"`     // причина ревизии
	ProcedureSteps     []ProcedureStepData     `json:"procedure_steps"`
	Documents          []DocumentData          `json:"documents"`
	Validations        []ValidationData        `json:"validations"`
	Approvers          []ApproverData          `json:"approvers"` // полный список аппруверов, включая обязательных по области
	Availability       AvailabilityData        `json:"availability"`
	ChangeReason       ChangeReasonData        `json:"change_reason"`
}

func (p PicData) Validate() error {
	if p.Platform == "" {
		return errs.NewValidation("не указана платформа")
	}
	if err := p.PartNumbersScope.Validate(); err != nil {
		return errs.NewValidation(err.Error())
	}
	if p.PartNumbersScope == models.PartNumbersListed && p.PartNumbersText == "" {
		return errs.NewValidation("не указан перечень номеров деталей")
	}
	if err := p.ChangeDuration.Validate(); err != nil {
		return errs.NewValidation(err.Error())
	}
	if _, err := helpers.ParseDate(p.OriginationDate); err != nil {
		return errs.NewValidation("некорректная дата создания изменения")
	}
	if _, err := helpers.ParseDate(p.ImplementationDate); err != nil {
		return errs.NewValidation("некорректная дата внедрения")
	}
	if p.AffectedOperations == "" {
		return errs.NewValidation("не указаны затронутые операции")
	}
	if p.RevisionReason == "" {
		return errs.NewValidation("не указана причина ревизии")
	}
	if len(p.ProcedureSteps) == 0 {
		return errs.NewValidation("требуется хотя бы один шаг процедуры")
	}
	for _, step := range p.ProcedureSteps {
		if err := step.Validate(); err != nil {
			return err
		}
	}
	for _, doc := range p.Documents {
		if err := doc.Validate(); err != nil {
			return err
		}
	}
	if len(p.Validations) == 0 {
		return errs.NewValidation("требуется хотя бы одна валидация")
	}
	for _, val := range p.Validations {
		if err := val.Validate(); err != nil {
			return err
		}
	}
	if len(p.Approvers) == 0 {
		return errs.NewValidation("требуется хотя бы один аппрувер")
	}
	for _, appr := range p.Approvers {
		if err := appr.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type PicCreateData struct {
	PicData
}

type PicEditData struct {
	PicData
}

type PicFilter struct {
	apimodels.Pagination
	Status    models.PicStatus `json:"status"`     // фильтр по статусу
	CreatedBy string           `json:"created_by"` // фильтр по автору
}

func (f PicFilter) Validate() error {
	if f.Status != "" {
		if err := f.Status.Validate(); err != nil {
			return errs.NewValidation(err.Error())
		}
	}
	return nil
}

type PicView struct {
	ID                 string                  `json:"id"`
	AffectedAreaID     string                  `json:"affected_area_id"`
	AffectedAreaName   string                  `json:"affected_area_name"`
	Platform           string                  `json:"platform"`
	PartNumbersScope   models.PartNumbersScope `json:"part_numbers_scope"`
	PartNumbersText    string                  `json:"part_numbers_text"`
	ChangeDuration     models.ChangeDuration   `json:"change_duration"`
	TemporaryType      string                  `json:"temporary_type"`
	PiecesTimeDate     string                  `json:"pieces_time_date"`
	OriginationDate    string                  `json:"origination_date"`
	ImplementationDate string                  `json:"implementation_date"`
	AffectedOperations string                  `json:"affected_operations"`
	RevisionReason     string                  `json:"revision_reason"`
	Status             models.PicStatus        `json:"status"`
	StatusName         string                  `json:"status_name"`
	CreatedBy          string                  `json:"created_by"`
	CreatorName        string                  `json:"creator_name"`
	CreationDate       time.Time               `json:"creation_date"`
	AttachmentID       string                  `json:"attachment_id,omitempty"`
	ProcedureSteps     []ProcedureStepData     `json:"procedure_steps"`
	Documents          []DocumentData          `json:"documents"`
	Validations        []ValidationData        `json:"validations"`
	Approvals          []ApprovalEntryView     `json:"approvals"`
	Availability       AvailabilityData        `json:"availability"`
	ChangeReason       ChangeReasonData        `json:"change_reason"`
}

func PicConvert(rec dbmodels.Pic) PicView {
	result := PicView{
		ID:                 rec.ID,
		Platform:           rec.Platform,
		PartNumbersScope:   rec.PartNumbersScope,
		PartNumbersText:    rec.PartNumbersText,
		ChangeDuration:     rec.ChangeDuration,
		TemporaryType:      rec.TemporaryType,
		PiecesTimeDate:     rec.PiecesTimeDate,
		OriginationDate:    helpers.FormatDate(rec.OriginationDate),
		ImplementationDate: helpers.FormatDate(rec.ImplementationDate),
		AffectedOperations: rec.AffectedOperations,
		RevisionReason:     rec.RevisionReason,
		Status:             rec.Status,
		StatusName:         rec.Status.ToHuman(),
		CreatedBy:          rec.CreatedBy,
		CreationDate:       rec.CreatedAt,
	}
	if rec.AffectedAreaID != nil {
		result.AffectedAreaID = *rec.AffectedAreaID
	}
	if rec.AffectedArea != nil {
		result.AffectedAreaName = rec.AffectedArea.Name
	}
	if rec.Creator != nil {
		result.CreatorName = rec.Creator.FullName
	}
	if rec.AttachmentID != nil {
		result.AttachmentID = *rec.AttachmentID
	}
	for _, step := range rec.ProcedureSteps {
		result.ProcedureSteps = append(result.ProcedureSteps, ProcedureStepData{
			Step:        step.Description,
			Responsible: step.Responsible,
			Date:        helpers.FormatDate(step.Date),
		})
	}
	for _, doc := range rec.Documents {
		result.Documents = append(result.Documents, DocumentData{
			DocumentType: doc.DocumentType,
			Responsible:  doc.Responsible,
			Date:         helpers.FormatDate(doc.Date),
		})
	}
	for _, val := range rec.Validations {
		result.Validations = append(result.Validations, ValidationData{
			Description: val.Description,
			Responsible: val.Responsible,
			Date:        helpers.FormatDate(val.Date),
		})
	}
	for _, entry := range rec.ApprovalEntries {
		result.Approvals = append(result.Approvals, ApprovalEntryConvert(entry))
	}
	if rec.Availability != nil {
		result.Availability = AvailabilityData{
			Fixtures:      rec.Availability.Fixtures,
			TestEquipment: rec.Availability.TestEquipment,
			Other:         rec.Availability.Other,
		}
	}
	if rec.ChangeReason != nil {
		result.ChangeReason = ChangeReasonData{
			Safety:       rec.ChangeReason.Safety,
			Delivery:     rec.ChangeReason.Delivery,
			Productivity: rec.ChangeReason.Productivity,
			Quality:      rec.ChangeReason.Quality,
			Cost:         rec.ChangeReason.Cost,
			Process:      rec.ChangeReason.Process,
			Other:        rec.ChangeReason.Other,
		}
	}
	return result
}
