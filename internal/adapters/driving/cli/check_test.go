package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCmd_Use(t *testing.T) {
	assert.Equal(t, "check [path]", checkCmd.Use)
}

func TestCheckCmd_HasLangFlag(t *testing.T) {
	flag := checkCmd.Flags().Lookup("lang")
	require.NotNil(t, flag, "lang flag should exist")
	assert.Equal(t, "l", flag.Shorthand)
}

func TestCheckCmd_CleanTree(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"check", "/src/shop"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No violations found")
	assert.Contains(t, buf.String(), "Checked 4 modules, 3 references")
}

func TestCheckCmd_DefaultsToCurrentDirectory(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	stub := &stubCheckService{report: cleanReport()}
	checkService = stub

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"check"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, ".", stub.lastRoot)
}

func TestCheckCmd_ViolationsReturnSentinel(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	checkService = &stubCheckService{report: dirtyReport()}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"check", "/src/shop"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, ErrViolationsFound)
	assert.Contains(t, buf.String(), "domain/user")
	assert.Contains(t, buf.String(), "infrastructure/user_repository_impl")
	assert.Contains(t, buf.String(), "1 violation found")
}

func TestCheckCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	checkService = &stubCheckService{report: dirtyReport()}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"check", "--json", "/src/shop"})
	defer func() {
		rootCmd.SetArgs(nil)
		checkJSON = false
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, ErrViolationsFound)
	assert.Contains(t, buf.String(), "\"from_module\": \"domain/user\"")
	assert.Contains(t, buf.String(), "\"to_layer\": \"infrastructure\"")
}

func TestCheckCmd_LangFlagPassedThrough(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	stub := &stubCheckService{report: cleanReport()}
	checkService = stub

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"check", "--lang", "java", "/src/shop"})
	defer func() {
		rootCmd.SetArgs(nil)
		checkLang = ""
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Equal(t, "java", stub.lastOpts.Language)
}

func TestCheckCmd_NoPersistFlagPassedThrough(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	stub := &stubCheckService{report: cleanReport()}
	checkService = stub

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"check", "--no-persist", "/src/shop"})
	defer func() {
		rootCmd.SetArgs(nil)
		checkNoPersist = false
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.True(t, stub.lastOpts.NoPersist)
}

func TestCheckCmd_ServiceNotConfigured(t *testing.T) {
	oldService := checkService
	checkService = nil
	defer func() {
		checkService = oldService
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"check"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "check service not configured")
}

func TestCheckCmd_ServiceError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	checkService = &stubCheckService{err: assert.AnError}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"check", "/src/shop"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "check failed")
}
