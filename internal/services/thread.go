package services

import "postboard/dto"

// BuildThread nests a flat, oldest-first comment list into trees. Replies
// keep the input order. A comment whose parent is absent from the input is
// treated as a root.
func BuildThread(comments []dto.CommentResponse) []*dto.CommentNode {
	nodes := make(map[string]*dto.CommentNode, len(comments))
	for _, c := range comments {
		nodes[c.ID] = &dto.CommentNode{CommentResponse: c, Replies: []*dto.CommentNode{}}
	}

	roots := []*dto.CommentNode{}
	for _, c := range comments {
		n := nodes[c.ID]
		if c.Parent != nil {
			if parent, ok := nodes[*c.Parent]; ok && parent != n {
				parent.Replies = append(parent.Replies, n)
				continue
			}
		}
		roots = append(roots, n)
	}
	return roots
}
