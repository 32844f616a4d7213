package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	picapimodels "pic-tools-backend/models/api/pic"
)

// GenerateCard карточка заявки для печати
func GenerateCard(item picapimodels.PicView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateCard panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, fmt.Sprintf("Заявка на изменение процесса: %s", item.Platform), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)

	writeField := func(name, value string) {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(60, 7, name, "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 7, value, "", "L", false)
	}

	writeField("Статус", item.StatusName)
	writeField("Область", item.AffectedAreaName)
	writeField("Охват номеров деталей", string(item.PartNumbersScope))
	if item.PartNumbersText != "" {
		writeField("Номера деталей", item.PartNumbersText)
	}
	writeField("Тип изменения", string(item.ChangeDuration))
	if item.TemporaryType != "" {
		writeField("Временное изменение", item.TemporaryType)
	}
	writeField("Дата создания", item.OriginationDate)
	writeField("Дата внедрения", item.ImplementationDate)
	writeField("Затронутые операции", item.AffectedOperations)
	writeField("Причина ревизии", item.RevisionReason)
	writeField("Автор", item.CreatorName)

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, "Шаги процедуры", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	for idx, step := range item.ProcedureSteps {
		pdf.MultiCell(0, 6, fmt.Sprintf("%d. %s (%s, %s)", idx+1, step.Step, step.Responsible, step.Date), "", "L", false)
	}

	if len(item.Validations) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 13)
		pdf.CellFormat(0, 8, "Валидации", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		for _, val := range item.Validations {
			pdf.MultiCell(0, 6, fmt.Sprintf("%s (%s, %s)", val.Description, val.Responsible, val.Date), "", "L", false)
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.CellFormat(0, 8, "Согласование", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	for _, entry := range item.Approvals {
		line := fmt.Sprintf("%s: %s", entry.ApproverName, entry.DecisionName)
		if entry.Comment != "" {
			line += fmt.Sprintf(" (%s)", entry.Comment)
		}
		pdf.MultiCell(0, 6, line, "", "L", false)
	}

	var buf bytes.Buffer
	if err = pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
