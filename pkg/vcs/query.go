package vcs

import (
	"regexp"
	"strings"

	"github.com/facette/natsort"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/rolandpakai/liferay-ckeditor/ckapi"
)

// Errors:
//
//    - liferay-ckeditor-error-git --
func (s *Shell) HasBranch(name string) (bool, error) {
	repo, err := git.PlainOpen(s.Layout.SubmoduleDir())
	if err != nil {
		return false, ckapi.ErrorGit("failed to open submodule repository", err)
	}
	_, err = repo.Reference(plumbing.NewBranchReferenceName(name), false)
	if err == plumbing.ErrReferenceNotFound {
		return false, nil
	}
	if err != nil {
		return false, ckapi.ErrorGit("failed to look up branch "+name, err)
	}
	return true, nil
}

// Errors:
//
//    - liferay-ckeditor-error-git --
func (s *Shell) Tags() ([]string, error) {
	repo, err := git.PlainOpen(s.Layout.SubmoduleDir())
	if err != nil {
		return nil, ckapi.ErrorGit("failed to open submodule repository", err)
	}
	iter, err := repo.Tags()
	if err != nil {
		return nil, ckapi.ErrorGit("failed to list tags", err)
	}
	var tags []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		tags = append(tags, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, ckapi.ErrorGit("failed to iterate tags", err)
	}
	return tags, nil
}

// Errors:
//
//    - liferay-ckeditor-error-git --
func (s *Shell) HasTag(name string) (bool, error) {
	repo, err := git.PlainOpen(s.Layout.SubmoduleDir())
	if err != nil {
		return false, ckapi.ErrorGit("failed to open submodule repository", err)
	}
	_, err = repo.Tag(name)
	if err == git.ErrTagNotFound {
		return false, nil
	}
	if err != nil {
		return false, ckapi.ErrorGit("failed to look up tag "+name, err)
	}
	return true, nil
}

// TagSubject returns the subject line of the commit the tag points at,
// peeling annotated tag objects along the way.
//
// Errors:
//
//    - liferay-ckeditor-error-git --
func (s *Shell) TagSubject(name string) (string, error) {
	repo, err := git.PlainOpen(s.Layout.SubmoduleDir())
	if err != nil {
		return "", ckapi.ErrorGit("failed to open submodule repository", err)
	}
	ref, err := repo.Tag(name)
	if err != nil {
		return "", ckapi.ErrorGit("failed to look up tag "+name, err)
	}
	var commit *object.Commit
	tagObj, err := repo.TagObject(ref.Hash())
	switch err {
	case nil:
		commit, err = tagObj.Commit()
		if err != nil {
			return "", ckapi.ErrorGit("failed to resolve tag object "+name, err)
		}
	case plumbing.ErrObjectNotFound:
		commit, err = repo.CommitObject(ref.Hash())
		if err != nil {
			return "", ckapi.ErrorGit("failed to resolve tag commit "+name, err)
		}
	default:
		return "", ckapi.ErrorGit("failed to read tag "+name, err)
	}
	subject := commit.Message
	if idx := strings.IndexByte(subject, '\n'); idx >= 0 {
		subject = subject[:idx]
	}
	return strings.TrimSpace(subject), nil
}

// PinnedSubmoduleHash reads the gitlink entry for the submodule path out
// of the host repository's HEAD commit tree.
//
// Errors:
//
//    - liferay-ckeditor-error-git --
func (s *Shell) PinnedSubmoduleHash() (string, error) {
	repo, err := git.PlainOpen(s.Layout.Root)
	if err != nil {
		return "", ckapi.ErrorGit("failed to open host repository", err)
	}
	head, err := repo.Head()
	if err != nil {
		return "", ckapi.ErrorGit("failed to resolve host HEAD", err)
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return "", ckapi.ErrorGit("failed to read host HEAD commit", err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return "", ckapi.ErrorGit("failed to read host HEAD tree", err)
	}
	entry, err := tree.FindEntry("ckeditor-dev")
	if err != nil {
		return "", ckapi.ErrorGit("failed to find submodule entry in host tree", err)
	}
	return entry.Hash.String(), nil
}

// releaseTagPattern matches plain upstream version tags, which keeps
// prereleases and any branch-namespace refs out of the candidate list.
var releaseTagPattern = regexp.MustCompile(`^\d+(\.\d+)*$`)

// SortedReleaseTags filters tags down to release versions and orders
// them newest-first with a numeric-aware comparison.
func SortedReleaseTags(tags []string) []string {
	var releases []string
	for _, t := range tags {
		if releaseTagPattern.MatchString(t) {
			releases = append(releases, t)
		}
	}
	natsort.Sort(releases)
	// natsort orders ascending; newest first is wanted here.
	for i, j := 0, len(releases)-1; i < j; i, j = i+1, j-1 {
		releases[i], releases[j] = releases[j], releases[i]
	}
	return releases
}
