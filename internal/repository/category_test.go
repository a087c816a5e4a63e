//go:build integration

package repository

import (
	"context"
	"testing"

	"continuous-improvement-backend/internal/database/models"
	"continuous-improvement-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CategoryRepositoryTestSuite tests the CategoryRepository against a real Postgres
type CategoryRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CategoryRepository
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *CategoryRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewCategoryRepository(suite.baseTestSuite.DB)
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *CategoryRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CategoryRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CategoryRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a category directly via gorm
func (suite *CategoryRepositoryTestSuite) createCategory(name string) *models.Category {
	c := testutils.NewCategoryFactory().WithName(name)
	suite.Require().NoError(suite.baseTestSuite.DB.Create(c).Error)
	return c
}

// TestGetByID tests retrieving a category by ID
func (suite *CategoryRepositoryTestSuite) TestGetByID() {
	category := suite.createCategory("Safety")

	retrieved, err := suite.repo.GetByID(suite.ctx, category.ID)

	suite.NoError(err)
	suite.Equal(category.ID, retrieved.ID)
	suite.Equal("Safety", retrieved.Name)
}

// TestGetByIDNotFound tests retrieving a non-existent category
func (suite *CategoryRepositoryTestSuite) TestGetByIDNotFound() {
	cat, err := suite.repo.GetByID(suite.ctx, 424242)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(cat)
}

// TestGetAllOrderedByName tests listing categories alphabetically
func (suite *CategoryRepositoryTestSuite) TestGetAllOrderedByName() {
	suite.createCategory("Quality")
	suite.createCategory("Ergonomics")
	suite.createCategory("Safety")

	categories, err := suite.repo.GetAll(suite.ctx)

	suite.NoError(err)
	suite.Require().Len(categories, 3)
	suite.Equal("Ergonomics", categories[0].Name)
	suite.Equal("Quality", categories[1].Name)
	suite.Equal("Safety", categories[2].Name)
}

// TestFindExistingIDs tests that unknown ids are left out
func (suite *CategoryRepositoryTestSuite) TestFindExistingIDs() {
	a := suite.createCategory("Quality")
	b := suite.createCategory("Safety")

	ids, err := suite.repo.FindExistingIDs(suite.ctx, []uint{a.ID, 999999, b.ID})

	suite.NoError(err)
	suite.ElementsMatch([]uint{a.ID, b.ID}, ids)
}

// TestCategoryRepositoryTestSuite runs the test suite
func TestCategoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositoryTestSuite))
}
