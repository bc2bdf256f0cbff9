/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package data

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuroinfo/dwiqc/common/null"
	"github.com/neuroinfo/dwiqc/common/schema"
	"github.com/neuroinfo/dwiqc/common/uconfig"
	"github.com/neuroinfo/dwiqc/server/global"
)

const fixtureID = "SES01_DWI_12_DWIQC"

func newTestData(t *testing.T) *Data {
	t.Helper()
	dir := t.TempDir()

	conf := global.ConfigFrom(uconfig.Null())
	conf.SC.Set(global.ConfigDBPath, dir)
	conf.SC.Set(global.ConfigFilesPath, filepath.Join(dir, "files"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "files"), 0700))

	d, err := New(conf, null.Logger())
	require.NoError(t, err)
	t.Cleanup(d.Close)
	return d
}

func writeFile(t *testing.T, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(name), 0700))
	require.NoError(t, os.WriteFile(name, []byte(content), 0600))
}

// writeArtifacts lays out a pipeline output directory
func writeArtifacts(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	xmlDoc, err := os.ReadFile(filepath.Join("..", "assessor", "testdata", "assessment.xml"))
	require.NoError(t, err)
	writeFile(t, filepath.Join(dir, "assessor", "assessment.xml"), string(xmlDoc))

	res := filepath.Join(dir, "resources")
	writeFile(t, filepath.Join(res, "FA_map", fixtureID+"_FA.png"), "hello\n")
	writeFile(t, filepath.Join(res, "b0-volume", fixtureID+"_b0_volume.nii.gz"), "nifti")
	writeFile(t, filepath.Join(res, "bval-avg", fixtureID+"_avg_b1000.png"), "b1000")
	writeFile(t, filepath.Join(res, "bval-avg", fixtureID+"_avg_b2000.png"), "b2000")
	writeFile(t, filepath.Join(res, "README"), "not a resource")
	require.NoError(t, os.MkdirAll(filepath.Join(res, "empty"), 0700))
	return dir
}

// setArtifactID rewrites the assessment ID of an artifacts directory
func setArtifactID(t *testing.T, dir, id string) {
	t.Helper()
	name := filepath.Join(dir, "assessor", "assessment.xml")
	b, err := os.ReadFile(name)
	require.NoError(t, err)
	doc := strings.Replace(string(b), `ID="`+fixtureID+`"`, `ID="`+id+`"`, 1)
	require.NotEqual(t, string(b), doc)
	writeFile(t, name, doc)
}

func TestTokens(t *testing.T) {
	d := newTestData(t)
	require.NoError(t, d.SetAuth("alice", "pw", schema.RoleUser))

	access, refresh, err := d.LoginGetToken("alice", "pw")
	require.NoError(t, err)

	user, role, err := d.ValidateToken(access, schema.TokenPurposeAccess)
	require.NoError(t, err)
	assert.Equal(t, "alice", user)
	assert.Equal(t, schema.RoleUser, role)

	_, _, err = d.ValidateToken(access, schema.TokenPurposeRefresh)
	assert.Error(t, err)

	newAccess, err := d.RefreshToken(refresh)
	require.NoError(t, err)
	_, _, err = d.ValidateToken(newAccess, schema.TokenPurposeAccess)
	assert.NoError(t, err)

	_, err = d.RefreshToken(access)
	assert.Error(t, err)

	_, _, err = d.LoginGetToken("alice", "wrong")
	assert.Error(t, err)
}

func TestImportArtifacts(t *testing.T) {
	d := newTestData(t)

	dwiqc, err := d.ImportArtifacts(writeArtifacts(t))
	require.NoError(t, err)
	assert.Equal(t, fixtureID, dwiqc.ID)

	byLabel := map[string]schema.AbstractResource{}
	for _, r := range dwiqc.OutFile {
		byLabel[r.Label] = r
	}
	require.Len(t, dwiqc.OutFile, 5)

	fa := byLabel["FA_map"]
	assert.Equal(t, schema.KindResource, fa.Kind)
	assert.Equal(t, "/files/"+fixtureID+"/FA_map/"+fixtureID+"_FA.png", fa.URI)
	assert.Equal(t, "PNG", fa.Format)
	assert.Equal(t, "5891b5b522d5df086d0ff0b110fbd9d21bb4fc7163af34d08286a2e846f6be03", fa.Checksum)
	assert.Equal(t, int64(6), fa.Size)

	assert.Equal(t, "NIFTI", byLabel["b0-volume"].Format)

	series := byLabel["bval-avg"]
	assert.Equal(t, schema.KindResourceSeries, series.Kind)
	assert.Empty(t, series.URI)
	assert.Equal(t, 2, series.FileCount)
	assert.Equal(t, int64(10), series.Size)

	b1000 := byLabel["bval-avg/"+fixtureID+"_avg_b1000.png"]
	assert.Equal(t, schema.KindResource, b1000.Kind)
	assert.FileExists(t, filepath.Join(d.FilesPath(), fixtureID, "bval-avg", fixtureID+"_avg_b1000.png"))

	item, err := d.GetItem(fixtureID)
	require.NoError(t, err)
	assert.Equal(t, schema.XSITypeDwiqc, item.XSIType)
	assert.Equal(t, "TestProject", item.Project)

	// No staging directories are left behind
	entries, err := os.ReadDir(d.FilesPath())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, fixtureID, entries[0].Name())
}

func TestReimportReplacesFiles(t *testing.T) {
	d := newTestData(t)

	dir := writeArtifacts(t)
	_, err := d.ImportArtifacts(dir)
	require.NoError(t, err)

	require.NoError(t, os.RemoveAll(filepath.Join(dir, "resources", "bval-avg")))
	dwiqc, err := d.ImportArtifacts(dir)
	require.NoError(t, err)
	assert.Len(t, dwiqc.OutFile, 2)
	assert.NoDirExists(t, filepath.Join(d.FilesPath(), fixtureID, "bval-avg"))
}

func TestImportWithoutResources(t *testing.T) {
	d := newTestData(t)

	dir := writeArtifacts(t)
	require.NoError(t, os.RemoveAll(filepath.Join(dir, "resources")))

	dwiqc, err := d.ImportArtifacts(dir)
	require.NoError(t, err)
	assert.NotNil(t, dwiqc.OutFile)
	assert.Empty(t, dwiqc.OutFile)

	_, err = d.ImportArtifacts(t.TempDir())
	assert.Error(t, err)
}

func TestImportRejectsUnsafeIDs(t *testing.T) {
	d := newTestData(t)
	_, err := d.ImportArtifacts(writeArtifacts(t))
	require.NoError(t, err)
	stored := filepath.Join(d.FilesPath(), fixtureID, "FA_map", fixtureID+"_FA.png")

	for _, id := range []string{".", "..", "../outside", "a/b", ".import-x", "has space"} {
		t.Run(id, func(t *testing.T) {
			dir := writeArtifacts(t)
			setArtifactID(t, dir, id)

			_, err := d.ImportArtifacts(dir)
			assert.ErrorIs(t, err, schema.ErrInvalidID)

			assert.FileExists(t, stored)
			entries, err := os.ReadDir(d.FilesPath())
			require.NoError(t, err)
			require.Len(t, entries, 1)
			assert.Equal(t, fixtureID, entries[0].Name())
			assert.NoDirExists(t, filepath.Join(filepath.Dir(d.FilesPath()), "outside"))
		})
	}

	// An empty ID is refused while parsing
	dir := writeArtifacts(t)
	setArtifactID(t, dir, "")
	_, err = d.ImportArtifacts(dir)
	assert.Error(t, err)
	assert.FileExists(t, stored)

	_, err = d.GetItem(fixtureID)
	assert.NoError(t, err)
}

func TestImportEscapesFileNames(t *testing.T) {
	d := newTestData(t)

	dir := writeArtifacts(t)
	res := filepath.Join(dir, "resources")
	writeFile(t, filepath.Join(res, "QC report", "report#1.html"), "<html/>")
	writeFile(t, filepath.Join(res, "odd%label", "x?.txt"), "x")

	dwiqc, err := d.ImportArtifacts(dir)
	require.NoError(t, err)

	uris := map[string]string{}
	for _, r := range dwiqc.OutFile {
		uris[r.Label] = r.URI
	}
	assert.Equal(t, "/files/"+fixtureID+"/QC%20report/report%231.html", uris["QC report"])
	assert.Equal(t, "/files/"+fixtureID+"/odd%25label/x%3F.txt", uris["odd%label"])
	assert.Equal(t, "/files/"+fixtureID+"/FA_map/"+fixtureID+"_FA.png", uris["FA_map"])

	// The escaped address decodes to the stored file
	u, err := url.Parse(uris["QC report"])
	require.NoError(t, err)
	assert.Empty(t, u.Fragment)
	name := strings.TrimPrefix(u.Path, global.FileDirPattern)
	assert.FileExists(t, filepath.Join(d.FilesPath(), filepath.FromSlash(name)))
	assert.True(t, d.FileAccess(schema.AuthInfo{ID: "root", Role: schema.RoleAdmin, Authenticated: true}, "/"+name))
}

func TestDeleteRejectsUnsafeIDs(t *testing.T) {
	d := newTestData(t)
	_, err := d.ImportArtifacts(writeArtifacts(t))
	require.NoError(t, err)

	for _, id := range []string{".", "..", ""} {
		assert.ErrorIs(t, d.DeleteAssessment(id), schema.ErrNotFound)
	}
	assert.DirExists(t, filepath.Join(d.FilesPath(), fixtureID))
}

func TestAccess(t *testing.T) {
	d := newTestData(t)
	_, err := d.ImportArtifacts(writeArtifacts(t))
	require.NoError(t, err)

	require.NoError(t, d.SetAuth("bob", "pw", schema.RoleUser))
	bob := schema.AuthInfo{ID: "bob", Role: schema.RoleUser, Authenticated: true}
	admin := schema.AuthInfo{ID: "root", Role: schema.RoleAdmin, Authenticated: true}

	_, err = d.Assessment(bob, fixtureID)
	assert.ErrorIs(t, err, schema.ErrAccessDenied)
	refs, err := d.ListAssessments(bob, "")
	require.NoError(t, err)
	assert.Empty(t, refs)
	assert.False(t, d.FileAccess(bob, "/"+fixtureID+"/FA_map/x.png"))

	require.NoError(t, d.Grant("bob", "TestProject"))
	a, err := d.Assessment(bob, fixtureID)
	require.NoError(t, err)
	assert.Equal(t, "TestProject", a.Project)
	refs, err = d.ListAssessments(bob, "")
	require.NoError(t, err)
	assert.Len(t, refs, 1)
	assert.True(t, d.FileAccess(bob, "/"+fixtureID+"/FA_map/x.png"))

	refs, err = d.ListAssessments(admin, "OtherProject")
	require.NoError(t, err)
	assert.Empty(t, refs)

	_, err = d.Assessment(admin, "missing")
	assert.ErrorIs(t, err, schema.ErrNotFound)
	assert.False(t, d.FileAccess(admin, "/"))

	meta, err := d.User("bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"TestProject"}, meta.Projects)

	require.NoError(t, d.DeleteAssessment(fixtureID))
	assert.NoDirExists(t, filepath.Join(d.FilesPath(), fixtureID))
	assert.ErrorIs(t, d.DeleteAssessment(fixtureID), schema.ErrNotFound)
}

func TestPruneStaging(t *testing.T) {
	d := newTestData(t)

	old := filepath.Join(d.FilesPath(), stagingPrefix+"old")
	fresh := filepath.Join(d.FilesPath(), stagingPrefix+"fresh")
	kept := filepath.Join(d.FilesPath(), fixtureID)
	for _, dir := range []string{old, fresh, kept} {
		require.NoError(t, os.MkdirAll(dir, 0700))
	}
	past := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))
	require.NoError(t, os.Chtimes(kept, past, past))

	assert.Equal(t, 1, d.PruneStaging(time.Hour))
	assert.NoDirExists(t, old)
	assert.DirExists(t, fresh)
	assert.DirExists(t, kept)

	wantURL := "http://127.0.0.1:8080/app/report/" + fixtureID
	assert.Equal(t, wantURL, d.ReportURL(fixtureID))
}
