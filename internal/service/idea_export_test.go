package service_test

import (
	"bytes"
	"errors"
	"strings"
	"time"

	"continuous-improvement-backend/internal/database/models"
	"continuous-improvement-backend/internal/export"

	"github.com/xuri/excelize/v2"
)

func (suite *IdeaServiceTestSuite) TestExportIdeas() {
	ideas := []models.Idea{
		{
			BaseModel:        models.BaseModel{ID: 2},
			FullName:         "Ana Ruiz",
			RegistrationDate: time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC),
			Status:           &models.Status{Name: "Registered"},
			ChampionLinks: []models.IdeaChampion{
				{Champion: models.Champion{Name: "Marta Gil"}},
				{Champion: models.Champion{Name: "Jon Vega"}},
			},
		},
		{
			BaseModel:        models.BaseModel{ID: 1},
			FullName:         "Eva Sanz",
			RegistrationDate: time.Date(2024, time.January, 9, 8, 0, 0, 0, time.UTC),
		},
	}
	suite.mockIdeaRepo.EXPECT().List(suite.ctx).Return(ideas, nil)

	file, err := suite.ideaService.ExportIdeas(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(export.ContentType, file.ContentType)
	suite.True(strings.HasPrefix(file.FileName, "ContinuousImprovementIdeas_"))
	suite.True(strings.HasSuffix(file.FileName, ".xlsx"))

	f, err := excelize.OpenReader(bytes.NewReader(file.Content))
	suite.Require().NoError(err)
	defer f.Close()

	rows, err := f.GetRows(export.SheetName)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	suite.Equal("31/12/2024", rows[1][6])
	suite.Equal("Marta Gil, Jon Vega", rows[1][7])
	suite.Equal(models.NoStatusName, rows[2][5])
	suite.Equal("09/01/2024", rows[2][6])
}

func (suite *IdeaServiceTestSuite) TestExportIdeas_RepositoryError() {
	suite.mockIdeaRepo.EXPECT().List(suite.ctx).Return(nil, errors.New("db down"))

	file, err := suite.ideaService.ExportIdeas(suite.ctx)

	suite.Error(err)
	suite.Nil(file)
}
