package service_test

import (
	"context"
	"errors"

	"continuous-improvement-backend/internal/database/models"
	apperrors "continuous-improvement-backend/internal/errors"
	"continuous-improvement-backend/internal/mail"
	"continuous-improvement-backend/internal/service"

	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func (suite *IdeaServiceTestSuite) assignmentFixtures() (*models.Idea, *models.Champion) {
	idea := &models.Idea{
		BaseModel:        models.BaseModel{ID: 10},
		FullName:         "Ana Ruiz",
		CurrentSituation: "Manual <counting>",
		IdeaDescription:  "Add a scale",
	}
	champion := &models.Champion{BaseModel: models.BaseModel{ID: 20}, Name: "Marta Gil", Email: "marta@example.com"}
	return idea, champion
}

func (suite *IdeaServiceTestSuite) TestAssignChampions_NewLinkNotifies() {
	idea, champion := suite.assignmentFixtures()

	suite.mockIdeaRepo.EXPECT().GetByID(suite.ctx, uint(10)).Return(idea, nil)
	suite.mockChampionRepo.EXPECT().GetByID(suite.ctx, uint(20)).Return(champion, nil)
	suite.mockIdeaRepo.EXPECT().AddChampion(suite.ctx, uint(10), uint(20)).Return(true, nil)
	suite.mockSender.EXPECT().
		Send(suite.ctx, "marta@example.com", mail.ChampionAssignedSubject, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, body string) error {
			suite.Contains(body, "Marta Gil")
			suite.Contains(body, "Manual &lt;counting&gt;")
			return nil
		})

	resp, err := suite.ideaService.AssignChampions(suite.ctx, []service.ChampionAssignment{{IdeaID: 10, ChampionID: 20}})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Results, 1)
	suite.Equal(service.AssignmentAssigned, resp.Results[0].Status)
	suite.True(resp.Results[0].Notified)
	suite.Empty(resp.Results[0].NotificationError)
}

func (suite *IdeaServiceTestSuite) TestAssignChampions_ExistingLinkStillNotifies() {
	idea, champion := suite.assignmentFixtures()

	suite.mockIdeaRepo.EXPECT().GetByID(gomock.Any(), uint(10)).Return(idea, nil)
	suite.mockChampionRepo.EXPECT().GetByID(gomock.Any(), uint(20)).Return(champion, nil)
	suite.mockIdeaRepo.EXPECT().AddChampion(gomock.Any(), uint(10), uint(20)).Return(false, nil)
	suite.mockSender.EXPECT().Send(gomock.Any(), "marta@example.com", gomock.Any(), gomock.Any()).Return(nil).Times(1)

	resp, err := suite.ideaService.AssignChampions(suite.ctx, []service.ChampionAssignment{{IdeaID: 10, ChampionID: 20}})

	suite.Require().NoError(err)
	suite.Equal(service.AssignmentAlreadyAssigned, resp.Results[0].Status)
	suite.True(resp.Results[0].Notified)
}

func (suite *IdeaServiceTestSuite) TestAssignChampions_ReportsMissingEntities() {
	idea, champion := suite.assignmentFixtures()

	suite.mockIdeaRepo.EXPECT().GetByID(gomock.Any(), uint(99)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockIdeaRepo.EXPECT().GetByID(gomock.Any(), uint(10)).Return(idea, nil)
	suite.mockChampionRepo.EXPECT().GetByID(gomock.Any(), uint(98)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockChampionRepo.EXPECT().GetByID(gomock.Any(), uint(20)).Return(champion, nil)
	suite.mockIdeaRepo.EXPECT().AddChampion(gomock.Any(), uint(10), uint(20)).Return(true, nil)
	suite.mockSender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	resp, err := suite.ideaService.AssignChampions(suite.ctx, []service.ChampionAssignment{
		{IdeaID: 99, ChampionID: 20},
		{IdeaID: 10, ChampionID: 98},
		{IdeaID: 10, ChampionID: 20},
	})

	suite.Require().NoError(err)
	suite.Require().Len(resp.Results, 3)
	suite.Equal(service.AssignmentIdeaNotFound, resp.Results[0].Status)
	suite.False(resp.Results[0].Notified)
	suite.Equal(service.AssignmentChampionNotFound, resp.Results[1].Status)
	suite.Equal(service.AssignmentAssigned, resp.Results[2].Status)
}

func (suite *IdeaServiceTestSuite) TestAssignChampions_MailFailureDoesNotAbortBatch() {
	idea, champion := suite.assignmentFixtures()
	other := &models.Champion{BaseModel: models.BaseModel{ID: 21}, Name: "Jon Vega", Email: "jon@example.com"}

	suite.mockIdeaRepo.EXPECT().GetByID(gomock.Any(), uint(10)).Return(idea, nil)
	suite.mockChampionRepo.EXPECT().GetByID(gomock.Any(), uint(20)).Return(champion, nil)
	suite.mockChampionRepo.EXPECT().GetByID(gomock.Any(), uint(21)).Return(other, nil)
	suite.mockIdeaRepo.EXPECT().AddChampion(gomock.Any(), uint(10), uint(20)).Return(true, nil)
	suite.mockIdeaRepo.EXPECT().AddChampion(gomock.Any(), uint(10), uint(21)).Return(true, nil)
	suite.mockSender.EXPECT().Send(gomock.Any(), "marta@example.com", gomock.Any(), gomock.Any()).
		Return(errors.New("535 authentication failed"))
	suite.mockSender.EXPECT().Send(gomock.Any(), "jon@example.com", gomock.Any(), gomock.Any()).Return(nil)

	resp, err := suite.ideaService.AssignChampions(suite.ctx, []service.ChampionAssignment{
		{IdeaID: 10, ChampionID: 20},
		{IdeaID: 10, ChampionID: 21},
	})

	suite.Require().NoError(err)
	suite.Equal(service.AssignmentAssigned, resp.Results[0].Status)
	suite.False(resp.Results[0].Notified)
	suite.Equal(apperrors.ErrMailNotSent.Error(), resp.Results[0].NotificationError)
	suite.NotContains(resp.Results[0].NotificationError, "535")
	suite.True(resp.Results[1].Notified)
}

func (suite *IdeaServiceTestSuite) TestAssignChampions_Empty() {
	_, err := suite.ideaService.AssignChampions(suite.ctx, nil)

	suite.ErrorIs(err, apperrors.ErrNoAssignments)
}

func (suite *IdeaServiceTestSuite) TestAssignChampions_ZeroID() {
	_, err := suite.ideaService.AssignChampions(suite.ctx, []service.ChampionAssignment{{IdeaID: 1}})

	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "champion_id")
}

func (suite *IdeaServiceTestSuite) TestAssignChampions_RepositoryError() {
	idea, champion := suite.assignmentFixtures()

	suite.mockIdeaRepo.EXPECT().GetByID(gomock.Any(), uint(10)).Return(idea, nil)
	suite.mockChampionRepo.EXPECT().GetByID(gomock.Any(), uint(20)).Return(champion, nil)
	suite.mockIdeaRepo.EXPECT().AddChampion(gomock.Any(), uint(10), uint(20)).Return(false, errors.New("db down"))
	suite.mockSender.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := suite.ideaService.AssignChampions(suite.ctx, []service.ChampionAssignment{{IdeaID: 10, ChampionID: 20}})

	suite.Error(err)
	suite.Contains(err.Error(), "db down")
}
