package seed_test

import (
	"context"
	"testing"

	"github.com/changhyeonkim/mediatheque-api/internal/catalog"
	"github.com/changhyeonkim/mediatheque-api/internal/loan"
	"github.com/changhyeonkim/mediatheque-api/internal/member"
	"github.com/changhyeonkim/mediatheque-api/internal/seed"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/clock"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/testutil"
	"github.com/changhyeonkim/mediatheque-api/internal/shared/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServices(t *testing.T) (*member.MemberService, *catalog.CatalogService) {
	t.Helper()

	require.NoError(t, validator.RegisterAll())

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	memberRepo := member.NewMemberRepository()
	catalogRepo := catalog.NewCatalogRepository()
	loanRepo := loan.NewLoanRepository()
	loanService := loan.NewLoanService(db, loanRepo, memberRepo, catalogRepo, loan.DefaultPolicy(), clock.System{})

	return member.NewMemberService(db, memberRepo, loanService),
		catalog.NewCatalogService(db, catalogRepo, loanRepo)
}

func TestLoad_CatalogFile(t *testing.T) {
	require.NoError(t, validator.RegisterAll())

	file, err := seed.Load("testdata/catalog.yaml")

	require.NoError(t, err)
	assert.Len(t, file.Members, 2)
	require.Len(t, file.Media, 4)
	require.NotNil(t, file.Media[2].Available)
	assert.False(t, *file.Media[2].Available)
	assert.Nil(t, file.Media[0].Available)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	_, err := seed.Load("testdata/typo.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mail")
}

func TestParse_ValidatesEntries(t *testing.T) {
	require.NoError(t, validator.RegisterAll())

	testCases := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "invalid email",
			yaml: "members:\n  - firstName: Ada\n    lastName: Lovelace\n    email: not-an-email\n",
			want: "members[0]",
		},
		{
			name: "unknown media type",
			yaml: "media:\n  - type: VINYL\n    name: Blue Train\n",
			want: "media[0]",
		},
		{
			name: "media without name",
			yaml: "media:\n  - type: CD\n  - type: DVD\n    name: Alien\n",
			want: "media[0]",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := seed.Parse([]byte(tc.yaml))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestApply_CreatesMembersAndMedia(t *testing.T) {
	memberService, catalogService := setupServices(t)
	ctx := context.Background()

	file, err := seed.Load("testdata/catalog.yaml")
	require.NoError(t, err)

	result, err := seed.Apply(ctx, file, memberService, catalogService)

	require.NoError(t, err)
	assert.Equal(t, seed.Result{Members: 2, Media: 4}, result)

	media, err := catalogService.ListMedia(ctx)
	require.NoError(t, err)
	assert.Len(t, media.CDs, 1)
	assert.Len(t, media.BoardGames, 1)
	require.Len(t, media.Books, 1)
	assert.False(t, media.Books[0].Available)
}

func TestApply_SkipsRegisteredMembers(t *testing.T) {
	memberService, catalogService := setupServices(t)
	ctx := context.Background()

	file, err := seed.Load("testdata/catalog.yaml")
	require.NoError(t, err)
	_, err = seed.Apply(ctx, &seed.File{Members: file.Members}, memberService, catalogService)
	require.NoError(t, err)

	result, err := seed.Apply(ctx, file, memberService, catalogService)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Members)
	assert.Equal(t, 2, result.SkippedMembers)
	assert.Equal(t, 4, result.Media)
}
