package xlsexport

import (
	"github.com/xuri/excelize/v2"
	picapimodels "pic-tools-backend/models/api/pic"
)

const sheetName = "Реестр PIC"

var registerHeaders = []string{
	"Платформа",
	"Область",
	"Охват номеров деталей",
	"Тип изменения",
	"Дата создания",
	"Дата внедрения",
	"Причина ревизии",
	"Статус",
	"Автор",
}

// ExportRegister реестр заявок в виде xlsx
func ExportRegister(list []picapimodels.PicView) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err = f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	row := 0
	row, err = writeHeader(f, sheetName, row, registerHeaders)
	if err != nil {
		return nil, err
	}
	dataFrom := row + 1
	for _, item := range list {
		row++
		values := []interface{}{
			item.Platform,
			item.AffectedAreaName,
			string(item.PartNumbersScope),
			string(item.ChangeDuration),
			item.OriginationDate,
			item.ImplementationDate,
			item.RevisionReason,
			item.StatusName,
			item.CreatorName,
		}
		for col, value := range values {
			if err = writeColumn(f, sheetName, col+1, row, value); err != nil {
				return nil, err
			}
		}
	}
	if row >= dataFrom {
		if err = applyDataCellStyle(f, sheetName, 1, dataFrom, len(registerHeaders), row); err != nil {
			return nil, err
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
